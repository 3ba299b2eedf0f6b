package internal

import (
	"log"
)

func Init() (*Config, *Logger) {
	// Load configuration with empty config file path - will be handled by viper/cobra
	cfg, err := LoadConfig("")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level := LogLevelInfo
	if cfg.Debug {
		level = LogLevelDebug
	}

	var logger *Logger

	if err := InitGlobalLogger(cfg.LogDir, level, []Component{
		ComponentGeneral,
		ComponentAPI,
		ComponentCache,
		ComponentSession,
		ComponentDashboard,
		ComponentConfig,
		ComponentCLI,
	}); err != nil {
		// If logger initialization fails, use the default logger
		logger = GetLogger()
		logger.SetLevel(level)
		logger.Error(ComponentGeneral, "Error initializing logger: %v", err)
	}

	logger = GetLogger()

	return cfg, logger
}
