package config

// DefaultDatabasePath is where the sqlite file lives when
// DATABASE_PATH is not set.
const DefaultDatabasePath = "./livraria.db"
