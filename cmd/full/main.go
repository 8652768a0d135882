package main

import (
	"fmt"
	"os"

	standardlog "log"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"ctoup.com/devconnect/internal/version"
	"ctoup.com/devconnect/pkg/shared/config"
)

var rootCmd = &cobra.Command{
	Use:     "devconnect",
	Short:   "Developer social network API",
	Version: version.Version,
	// serve is the default command
	RunE: runServe,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage: true,
}

var logFile *lumberjack.Logger

func setupLogging() error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	logFolder := os.Getenv("LOG_FOLDER")
	if logFolder == "" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return nil
	}
	logFilePath := fmt.Sprintf("%s/main.log", logFolder)
	if instanceName := os.Getenv("INSTANCE_NAME"); instanceName != "" {
		logFilePath = fmt.Sprintf("%s/%s.log", logFolder, instanceName)
	}

	// Configure lumberjack for log rotation
	logFile = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	multiWriter := zerolog.MultiLevelWriter(logFile, os.Stdout)
	log.Logger = zerolog.New(multiWriter).With().Timestamp().Logger()
	return nil
}

func main() {
	godotenv.Load("./.env")
	godotenv.Overload("./.env", "./.env.local")

	rootCmd.AddCommand(serveCmd, migrateCmd)

	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		standardlog.Println(err)
		os.Exit(1)
	}
}
