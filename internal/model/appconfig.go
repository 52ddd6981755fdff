package model

// AppConfig holds user-level application configuration persisted between
// sessions.
type AppConfig struct {
	DefaultOptions Options  `json:"default_options"`
	RecentProjects []string `json:"recent_projects"`
	LastImportDir  string   `json:"last_import_dir"`
	LastExportDir  string   `json:"last_export_dir"`
}

// maxRecentProjects limits the recent-projects list length.
const maxRecentProjects = 10

// DefaultAppConfig returns the configuration used on first run.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultOptions: DefaultOptions(),
		RecentProjects: []string{},
	}
}

// AddRecentProject prepends a project path to the recent list, removing
// duplicates and truncating to the maximum length.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
