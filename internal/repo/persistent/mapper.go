package persistent

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sky-archive/internal/entity"
	"sky-archive/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:       hexOrEmpty(m.ID),
		Username: m.Username,
		Email:    m.Email,
		Password: m.Password,
		Role:     entity.Role(m.Role),
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:       objectIDFromHex(e.ID),
		Username: e.Username,
		Email:    e.Email,
		Password: e.Password,
		Role:     string(e.Role),
	}
}

func ToAssetEntity(m *model.AssetModel) *entity.Asset {
	if m == nil {
		return nil
	}

	return &entity.Asset{
		ID:                 hexOrEmpty(m.ID),
		Title:              m.Title,
		Disaster:           m.Disaster,
		Event:              m.Event,
		Date:               m.Date,
		Day:                m.Day,
		Time:               m.Time,
		Duration:           m.Duration,
		Place:              m.Place,
		AffectedAreas:      m.AffectedAreas,
		Geolocation:        m.Geolocation,
		Device:             m.Device,
		CameraModel:        m.CameraModel,
		Name:               m.Name,
		Biography:          m.Biography,
		ForecastAndStories: m.ForecastAndStories,
		Keywords:           m.Keywords,
		ImageSource:        m.ImageSource,
		ImageCopyright:     m.ImageCopyright,
		Software:           m.Software,
		AspectRatio:        m.AspectRatio,
		Resolution:         m.Resolution,
		ISO:                m.ISO,
		ShutterSpeed:       m.ShutterSpeed,
		Aperture:           m.Aperture,
		Photo:              m.Photo,
		Video:              m.Video,
		Audio:              m.Audio,
		Sound:              m.Sound,
		FileName:           m.FileName,
		FileSize:           m.FileSize,
		FileType:           m.FileType,
		Archival:           m.Archival,
		Document:           m.Document,
		Src:                m.Src,
		UserID:             hexOrEmpty(m.UserID),
		CreatedAt:          m.CreatedAt,
	}
}

func ToAssetModel(e *entity.Asset) *model.AssetModel {
	if e == nil {
		return nil
	}

	return &model.AssetModel{
		ID:                 objectIDFromHex(e.ID),
		Title:              e.Title,
		Disaster:           e.Disaster,
		Event:              e.Event,
		Date:               e.Date,
		Day:                e.Day,
		Time:               e.Time,
		Duration:           e.Duration,
		Place:              e.Place,
		AffectedAreas:      e.AffectedAreas,
		Geolocation:        e.Geolocation,
		Device:             e.Device,
		CameraModel:        e.CameraModel,
		Name:               e.Name,
		Biography:          e.Biography,
		ForecastAndStories: e.ForecastAndStories,
		Keywords:           e.Keywords,
		ImageSource:        e.ImageSource,
		ImageCopyright:     e.ImageCopyright,
		Software:           e.Software,
		AspectRatio:        e.AspectRatio,
		Resolution:         e.Resolution,
		ISO:                e.ISO,
		ShutterSpeed:       e.ShutterSpeed,
		Aperture:           e.Aperture,
		Photo:              e.Photo,
		Video:              e.Video,
		Audio:              e.Audio,
		Sound:              e.Sound,
		FileName:           e.FileName,
		FileSize:           e.FileSize,
		FileType:           e.FileType,
		Archival:           e.Archival,
		Document:           e.Document,
		Src:                e.Src,
		UserID:             objectIDFromHex(e.UserID),
		CreatedAt:          e.CreatedAt,
	}
}

func objectIDFromHex(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
