package database

import (
	"fmt"
	database "gitlab.com/aoterocom/AOBankroll/database/models"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dialector gorm.Dialector) (*DBService, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.Run{}, &database.RunPath{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

// NewDBServiceFromConfig opens MySQL or a local SQLite file depending on databaseDriver
func NewDBServiceFromConfig(c *helpers.Config) (*DBService, error) {
	switch c.DatabaseDriver {
	case "mysql":
		dsn := c.DatabaseUser + ":" + c.DatabasePassword + "@tcp(" + c.DatabaseHost + ":" + c.DatabasePort + ")/" +
			c.DatabaseName + "?charset=utf8mb4&parseTime=True&loc=Local"
		return NewDBService(mysql.Open(dsn))
	case "sqlite":
		return NewDBService(sqlite.Open(c.DatabasePath))
	default:
		return nil, fmt.Errorf("%s is not a known database driver", c.DatabaseDriver)
	}
}

func (dbs *DBService) RecordRun(result models.SimulationResult, summary analytics.RunSummary) (uint, error) {
	var dbPaths []database.RunPath
	for i, trajectory := range result.Trajectories {
		dbPaths = append(dbPaths, database.RunPath{
			PathIndex:     i,
			FinalBankroll: trajectory.Final(),
			MaxBankroll:   trajectory.Max(),
			BustHand:      trajectory.BustHand(),
		})
	}

	dbRun := database.Run{
		UUID:            result.RunID,
		Seed:            result.Seed,
		InitialBankroll: result.Config.InitialBankroll,
		BetSize:         result.Config.BetSize,
		HouseEdge:       result.Config.HouseEdge,
		StdDevPerHand:   result.StdDevPerHand,
		NumHands:        result.Config.NumHands,
		NumPaths:        result.Config.NumPaths,
		BankruptCount:   summary.BankruptCount,
		RuinProbability: summary.RuinProbability,
		FinalMean:       summary.FinalMean,
		FinalMedian:     summary.FinalMedian,
		FinalStdDev:     summary.FinalStdDev,
		Paths:           dbPaths,
	}

	if err := dbs.DB.Create(&dbRun).Error; err != nil {
		return 0, err
	}
	return dbRun.ID, nil
}

// RecentRuns returns the last limit runs, newest first, without their paths
func (dbs *DBService) RecentRuns(limit int) ([]database.Run, error) {
	var runs []database.Run
	err := dbs.DB.Order("id desc").Limit(limit).Find(&runs).Error
	return runs, err
}

func (dbs *DBService) GetRun(runID string) (*database.Run, error) {
	var run database.Run
	err := dbs.DB.Preload("Paths", func(db *gorm.DB) *gorm.DB {
		return db.Order("path_index")
	}).Where("uuid = ?", runID).First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (dbs *DBService) Close() error {
	sqlDB, err := dbs.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
