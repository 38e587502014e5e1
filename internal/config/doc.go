// Package config provides configuration management for the item service.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have defaults, so the service starts with no
// environment at all.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("items are stored in %s\n", cfg.DBPath)
package config
