package dto

type StatusDTO struct {
	App     AppStatusDTO     `json:"app"`
	Storage StorageStatusDTO `json:"storage"`
	Content ContentStatusDTO `json:"content"`
	AI      AIStatusDTO      `json:"ai"`
}

type AppStatusDTO struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	StartedAt string `json:"started_at"`
	UptimeSec int64  `json:"uptime_sec"`
}

type StorageStatusDTO struct {
	DBPath         string `json:"db_path"`
	SchemaVersion  int    `json:"schema_version"`
	SafeMode       bool   `json:"safe_mode"`
	SafeModeReason string `json:"safe_mode_reason,omitempty"`
}

type ContentStatusDTO struct {
	Pages       int  `json:"pages"`
	Calculators int  `json:"calculators"`
	Watching    bool `json:"watching"`
}

type AIStatusDTO struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model,omitempty"`
}
