// Package database handles the optional MySQL connection for the object
// index.
//
// It wraps GORM to configure the MySQL connection from the application's
// configuration, with pooled connections and an initial ping so a dead
// database is detected at startup instead of on first query.
//
// The connection is optional: the gateway serves everything straight from
// the bucket when no database is reachable, it just loses the indexed
// listing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("object index unavailable", zap.Error(err))
//	}
package database
