package model

// Row is one record keyed by column name.
type Row map[string]any

// ResultSet holds the rows of one query execution, in the order the service
// returned them.
type ResultSet []Row
