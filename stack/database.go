package stack

type databaseMarkers struct {
	Kind    DatabaseKind
	Markers []string
}

type databaseRule struct {
	Source SourceID
	// Tried in order within the source.
	Families []databaseMarkers
}

// Sources are scanned in order, first match wins.
var databaseRules = []databaseRule{
	{
		Source: SourcePackageJSON,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"pg", "pg-native", "postgres"}},
			{DatabaseMySQL, []string{"mysql", "mysql2"}},
			{DatabaseMongoDB, []string{"mongodb", "mongoose"}},
			{DatabaseRedis, []string{"redis", "ioredis"}},
			{DatabaseSQLite, []string{"sqlite3", "better-sqlite3"}},
		},
	},
	{
		Source: SourceRequirements,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"psycopg2", "postgresql"}},
			{DatabaseMySQL, []string{"mysql", "pymysql"}},
			{DatabaseMongoDB, []string{"pymongo", "mongoengine"}},
			{DatabaseRedis, []string{"redis", "redis-py"}},
			{DatabaseSQLite, []string{"sqlite", "sqlite3"}},
		},
	},
	{
		Source: SourcePomXML,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"postgresql", "postgres"}},
			{DatabaseMySQL, []string{"mysql"}},
			{DatabaseMongoDB, []string{"mongodb"}},
			{DatabaseRedis, []string{"redis"}},
			{DatabaseSQLite, []string{"sqlite"}},
		},
	},
	{
		Source: SourceGoMod,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"lib/pq", "postgres"}},
			{DatabaseMySQL, []string{"mysql"}},
			{DatabaseMongoDB, []string{"mongo"}},
			{DatabaseRedis, []string{"redis"}},
			{DatabaseSQLite, []string{"sqlite"}},
		},
	},
	{
		Source: SourceComposerJSON,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"doctrine/dbal", "postgresql"}},
			{DatabaseMySQL, []string{"mysql", "mysqli"}},
			{DatabaseMongoDB, []string{"mongodb"}},
			{DatabaseRedis, []string{"redis"}},
			{DatabaseSQLite, []string{"sqlite"}},
		},
	},
	{
		Source: SourceCargoTOML,
		Families: []databaseMarkers{
			{DatabasePostgreSQL, []string{"postgres", "tokio-postgres"}},
			{DatabaseMySQL, []string{"mysql"}},
			{DatabaseMongoDB, []string{"mongodb"}},
			{DatabaseRedis, []string{"redis"}},
			{DatabaseSQLite, []string{"rusqlite"}},
		},
	},
}

// Classifies the database dependency.
func matchDatabase(m Manifests) (DatabaseKind, Evidence) {
	for _, r := range databaseRules {
		for _, f := range r.Families {
			ev := m.Check(r.Source, f.Markers...)
			if ev.Err != nil {
				break
			}
			if ev.Matched {
				return f.Kind, ev
			}
		}
	}

	return "", Evidence{}
}
