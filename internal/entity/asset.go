package entity

// Asset is the metadata record describing an event image. Every descriptive
// field is optional; user_id and created_at are stamped server-side.
type Asset struct {
	ID                 string `json:"_id,omitempty"`
	Title              string `json:"title,omitempty"`
	Disaster           string `json:"disaster,omitempty"`
	Event              string `json:"event,omitempty"`
	Date               string `json:"date,omitempty"`
	Day                string `json:"day,omitempty"`
	Time               string `json:"time,omitempty"`
	Duration           string `json:"duration,omitempty"`
	Place              string `json:"place,omitempty"`
	AffectedAreas      string `json:"affectedAreas,omitempty"`
	Geolocation        string `json:"geolocation,omitempty"`
	Device             string `json:"device,omitempty"`
	CameraModel        string `json:"cameraModel,omitempty"`
	Name               string `json:"name,omitempty"`
	Biography          string `json:"biography,omitempty"`
	ForecastAndStories string `json:"forecastAndStories,omitempty"`
	Keywords           string `json:"keywords,omitempty"`
	ImageSource        string `json:"imageSource,omitempty"`
	ImageCopyright     string `json:"imageCopyright,omitempty"`
	Software           string `json:"software,omitempty"`
	AspectRatio        string `json:"aspectRatio,omitempty"`
	Resolution         string `json:"resolution,omitempty"`
	ISO                string `json:"iso,omitempty"`
	ShutterSpeed       string `json:"shutterSpeed,omitempty"`
	Aperture           string `json:"aperture,omitempty"`
	Photo              string `json:"photo,omitempty"`
	Video              string `json:"video,omitempty"`
	Audio              string `json:"audio,omitempty"`
	Sound              string `json:"sound,omitempty"`
	FileName           string `json:"fileName,omitempty"`
	FileSize           string `json:"fileSize,omitempty"`
	FileType           string `json:"fileType,omitempty"`
	Archival           string `json:"archival,omitempty"`
	Document           string `json:"document,omitempty"`
	Src                string `json:"src,omitempty"`
	UserID             string `json:"user_id,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
}

// ScatterAsset is the minimal projection served to the scatter view,
// decorated with the computed decay scale.
type ScatterAsset struct {
	ID    string  `json:"_id"`
	Src   string  `json:"src"`
	Scale float64 `json:"scale"`
}
