// Package testdb provides utilities for database integration tests.
//
// Tests obtain a migrated connection with GetTestDBWithT, which skips the test
// when no database URL is configured, and isolate their writes with WithTx,
// which rolls the transaction back when the test function returns:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(db, nil).WithTx(tx)
//	        // ...
//	    })
//	}
//
// The database URL is read from DATABASE_URL, falling back to TASKS_TEST_DB_URL.
package testdb
