// Package db provides pgx connection-pool helpers for the relational backend
// that the cache layer fronts: env-tag configuration, connect with retry, a
// health check closure and a transaction wrapper.
//
//	cfg, err := env.ParseAs[db.Config]()
//	if err != nil {
//	    return err
//	}
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
// The cache never talks to the database itself; handlers fetch through a
// repository on a cache miss and store the result (see examples/admin).
package db
