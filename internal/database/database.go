// Package database implements the persistence contracts from
// interfaces/operation on top of gorm.
package database

import (
	"context"
	"fmt"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/global"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBCloseCallback struct {
	logger   log.LoggerInterface
	database *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, database *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, database: database}
}

func (callback *DBCloseCallback) Invoke(_ context.Context) error {
	callback.logger.Info("Closing database connection")
	db, err := callback.database.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func ConnectDatabase(
	loggerInterface log.LoggerInterface,
	config *c.Config,
	debugMode bool,
) (global.Callable, *operation.DatabaseOperations, error) {
	queryTimeout := config.Database.QueryDuration

	connection := config.Database.GetConnection(loggerInterface)

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debugMode {
		connectionConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(
		&operation.Pilot{},
		&operation.Aircraft{},
		&operation.EngineFlight{},
		&operation.GliderFlight{},
		&operation.AgendaSlot{},
		&operation.AuditLog{},
	); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	// Stay below the server connection cap and keep about a fifth idle.
	maxOpenConnections := config.Database.ServerMaxConnections * 4 / 5
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}
	loggerInterface.Info("Database initialized and connection established")

	operations := operation.NewDatabaseOperations(
		NewPilotOperation(db, queryTimeout, config.Server.General),
		NewAircraftOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewSlotOperation(db, queryTimeout),
		NewAuditLogOperation(db, queryTimeout),
	)

	return NewDBCloseCallback(loggerInterface, db), operations, nil
}
