package config

// PersistenceConfig names the on-disk settings store
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// Persistence is the global persistence configuration
var Persistence PersistenceConfig

func init() {
	Persistence = PersistenceConfig{
		AppName:     "adversarial-game",
		SettingsKey: "settings",
	}
}
