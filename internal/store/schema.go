package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    line                 INTEGER PRIMARY KEY,
    timestamp            TEXT,
    amount               TEXT,
    category             TEXT
);

CREATE TABLE IF NOT EXISTS export_meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE VIEW IF NOT EXISTS categories AS
    SELECT DISTINCT category FROM entries
    WHERE category IS NOT NULL
    ORDER BY category;

CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category);
`
