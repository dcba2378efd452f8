// Package config loads startup configuration from the environment. A .env
// file is honored when present; everything has a sensible default so the
// game runs with no setup at all.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the startup settings for the game window and content.
type Config struct {
	WindowWidth  int    // Window width in pixels
	WindowHeight int    // Window height in pixels
	WindowTitle  string // Window title
	LevelPath    string // Optional JSON level file; empty = built-in level
}

// Load reads configuration from the environment, consulting a .env file
// first when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found or could not be loaded: %v", err)
	}

	return Config{
		WindowWidth:  getEnvAsInt("CODEVENTURE_WINDOW_WIDTH", 1280),
		WindowHeight: getEnvAsInt("CODEVENTURE_WINDOW_HEIGHT", 720),
		WindowTitle:  getEnv("CODEVENTURE_TITLE", "CodeVenture: The Code Warrior"),
		LevelPath:    getEnv("CODEVENTURE_LEVEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Environment variable %s must be an integer, using default %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
