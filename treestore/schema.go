package treestore

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  INTEGER NOT NULL,
	dim         INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	path_len    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS nodes (
	run_id     TEXT NOT NULL REFERENCES runs(id),
	tree       TEXT NOT NULL,
	node_id    INTEGER NOT NULL,
	parent_id  INTEGER NOT NULL,
	q          BLOB NOT NULL,
	PRIMARY KEY (run_id, tree, node_id)
);
CREATE TABLE IF NOT EXISTS path (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	seq     INTEGER NOT NULL,
	q       BLOB NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`
