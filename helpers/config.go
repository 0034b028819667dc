package helpers

import (
	"fmt"
	"github.com/joho/godotenv"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOBankroll/models"
	"math"
	"os"
	"strconv"
	"time"
)

// Config gathers the environment driven settings of the simulator
type Config struct {
	InitialBankroll  float64
	BetSize          float64
	HouseEdgePct     float64
	NumHands         int
	NumPaths         int
	StdDevMultiplier float64
	Seed             int64
	Workers          int
	TrendWindow      int
	MaxHands         int
	MaxPaths         int
	MaxSteps         int

	LogFile  string
	LogLevel string

	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string

	EnableDatabaseRecording bool
	DatabaseDriver          string
	DatabaseHost            string
	DatabasePort            string
	DatabaseName            string
	DatabaseUser            string
	DatabasePassword        string
	DatabasePath            string

	WebListen       string
	WebReadTimeout  time.Duration
	WebWriteTimeout time.Duration
}

// LoadConfig loads envFile into the process environment when it exists and reads the settings.
// A missing file is not an error unless it was explicitly requested.
func LoadConfig(envFile string, required bool) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil || required {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("error loading %s: %w", envFile, err)
			}
		}
	}

	var err error
	c := &Config{}
	if c.InitialBankroll, err = envFloat("initialBankroll", 150); err != nil {
		return nil, err
	}
	if c.BetSize, err = envFloat("betSize", 15); err != nil {
		return nil, err
	}
	if c.HouseEdgePct, err = envFloat("houseEdgePct", -0.5); err != nil {
		return nil, err
	}
	if c.NumHands, err = envInt("numHands", 400); err != nil {
		return nil, err
	}
	if c.NumPaths, err = envInt("numPaths", 20); err != nil {
		return nil, err
	}
	if c.StdDevMultiplier, err = envFloat("stdDevMultiplier", 1.14); err != nil {
		return nil, err
	}
	seed, err := envInt("seed", 0)
	if err != nil {
		return nil, err
	}
	c.Seed = int64(seed)
	if c.Workers, err = envInt("workers", 1); err != nil {
		return nil, err
	}
	if c.TrendWindow, err = envInt("trendWindow", 20); err != nil {
		return nil, err
	}
	limits := models.DefaultLimits()
	if c.MaxHands, err = envInt("maxHands", limits.MaxHands); err != nil {
		return nil, err
	}
	if c.MaxPaths, err = envInt("maxPaths", limits.MaxPaths); err != nil {
		return nil, err
	}
	if c.MaxSteps, err = envInt("maxSteps", limits.MaxSteps); err != nil {
		return nil, err
	}
	if c.MaxHands < 1 || c.MaxPaths < 1 || c.MaxSteps < 1 {
		return nil, fmt.Errorf("maxHands, maxPaths and maxSteps must be positive")
	}

	c.LogFile = envString("logFile", "bankroll.log")
	c.LogLevel = envString("logLevel", "info")

	if c.TelegramOutput, err = envBool("telegramOutput", false); err != nil {
		return nil, err
	}
	c.TelegramToken = os.Getenv("telegramToken")
	c.TelegramChatId = os.Getenv("telegramChatId")
	if c.TelegramOutput && (c.TelegramToken == "" || c.TelegramChatId == "") {
		return nil, fmt.Errorf("telegramOutput set to true but telegramToken or telegramChatId parameter not found")
	}

	if c.EnableDatabaseRecording, err = envBool("enableDatabaseRecording", false); err != nil {
		return nil, err
	}
	c.DatabaseDriver = envString("databaseDriver", "sqlite")
	c.DatabaseHost = os.Getenv("databaseHost")
	c.DatabasePort = envString("databasePort", "3306")
	c.DatabaseName = os.Getenv("databaseName")
	c.DatabaseUser = os.Getenv("databaseUser")
	c.DatabasePassword = os.Getenv("databasePassword")
	c.DatabasePath = envString("databasePath", "bankroll.db")

	c.WebListen = envString("webListen", ":8080")
	if c.WebReadTimeout, err = envDuration("webReadTimeout", 10*time.Second); err != nil {
		return nil, err
	}
	if c.WebWriteTimeout, err = envDuration("webWriteTimeout", 30*time.Second); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Limits() models.Limits {
	return models.Limits{
		MaxHands: c.MaxHands,
		MaxPaths: c.MaxPaths,
		MaxSteps: c.MaxSteps,
	}
}

func envString(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%s: %q is not a number", key, value)
	}
	return parsed, nil
}

func envInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return parsed, nil
}

func envBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return parsed, nil
}

// envDuration accepts day/week units too, e.g. "1d12h"
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := str2duration.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
