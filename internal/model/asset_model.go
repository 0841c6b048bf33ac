package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const AssetsCollection = "assets"

type AssetModel struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title,omitempty"`
	Disaster           string             `bson:"disaster,omitempty"`
	Event              string             `bson:"event,omitempty"`
	Date               string             `bson:"date,omitempty"`
	Day                string             `bson:"day,omitempty"`
	Time               string             `bson:"time,omitempty"`
	Duration           string             `bson:"duration,omitempty"`
	Place              string             `bson:"place,omitempty"`
	AffectedAreas      string             `bson:"affectedAreas,omitempty"`
	Geolocation        string             `bson:"geolocation,omitempty"`
	Device             string             `bson:"device,omitempty"`
	CameraModel        string             `bson:"cameraModel,omitempty"`
	Name               string             `bson:"name,omitempty"`
	Biography          string             `bson:"biography,omitempty"`
	ForecastAndStories string             `bson:"forecastAndStories,omitempty"`
	Keywords           string             `bson:"keywords,omitempty"`
	ImageSource        string             `bson:"imageSource,omitempty"`
	ImageCopyright     string             `bson:"imageCopyright,omitempty"`
	Software           string             `bson:"software,omitempty"`
	AspectRatio        string             `bson:"aspectRatio,omitempty"`
	Resolution         string             `bson:"resolution,omitempty"`
	ISO                string             `bson:"iso,omitempty"`
	ShutterSpeed       string             `bson:"shutterSpeed,omitempty"`
	Aperture           string             `bson:"aperture,omitempty"`
	Photo              string             `bson:"photo,omitempty"`
	Video              string             `bson:"video,omitempty"`
	Audio              string             `bson:"audio,omitempty"`
	Sound              string             `bson:"sound,omitempty"`
	FileName           string             `bson:"fileName,omitempty"`
	FileSize           string             `bson:"fileSize,omitempty"`
	FileType           string             `bson:"fileType,omitempty"`
	Archival           string             `bson:"archival,omitempty"`
	Document           string             `bson:"document,omitempty"`
	Src                string             `bson:"src,omitempty"`
	UserID             primitive.ObjectID `bson:"user_id,omitempty"`
	CreatedAt          string             `bson:"created_at,omitempty"`
}
