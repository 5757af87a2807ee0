package db

type DBType string

const (
	Sheets   DBType = "sheets"
	XLSX     DBType = "xlsx"
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	SQLite   DBType = "sqlite"
)

// ParseDBType maps the DB_TYPE setting to a backend. Empty means sheets.
func ParseDBType(s string) (DBType, bool) {
	switch t := DBType(s); t {
	case "":
		return Sheets, true
	case Sheets, XLSX, Postgres, Mongo, SQLite:
		return t, true
	default:
		return "", false
	}
}

// DB is a backend connection opened at startup and closed on shutdown.
type DB interface {
	Connect() error
	Disconnect() error
}
