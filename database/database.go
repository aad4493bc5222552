package database

import "database/sql"

// DBTX は *sqlx.DB と *sqlx.Tx の共通部分です。読み取り系のクエリ関数は
// どちらからでも呼べるように、この型を受け取ります。
type DBTX interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Prepare(query string) (*sql.Stmt, error)
	Rebind(query string) string
}
