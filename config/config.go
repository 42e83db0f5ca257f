package config

import "os"

// Config holds everything the server reads from the environment. It is loaded
// once in main and passed by reference. The only other env reader is the
// /test diagnostic, which reports whether the raw variables are set.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	AdminUsername string
	AdminPassword string
	AdminToken    string
}

// Load reads the environment with compiled-in defaults. The default admin
// credentials and token are intentionally weak demo values; set
// ADMIN_USERNAME, ADMIN_PASSWORD and ADMIN_TOKEN in any real deployment.
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8000"),
		MongoURI:      getenv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:  getenv("DATABASE_NAME", "forest_health"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "forest123"),
		AdminToken:    getenv("ADMIN_TOKEN", "forest-admin-token"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
