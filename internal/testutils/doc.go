// Package testutils provides testing utilities for the task API.
//
// This package contains helpers for:
//   - Building test tasks with functional options (NewTestTask)
//   - An in-memory store.TaskStore with failure injection (MemoryTaskStore)
//   - A sqlmock-backed connection pool for code that opens transactions (NewMockDB)
//   - Executing HTTP requests against a test server and decoding responses
//   - Capturing slog output (TestSlogHandler)
//
// # Test Tasks
//
//	task := testutils.NewTestTask(
//	    testutils.WithTaskTitle("Buy milk"),
//	    testutils.WithTaskStatus(domain.TaskStatusDone),
//	)
//
// # Transactions without a database
//
// Services run mutating operations through store.RunInTransaction, which
// needs a *sql.DB. NewMockDB returns one backed by sqlmock:
//
//	db, mock := testutils.NewMockDB(t)
//	testutils.ExpectCommits(mock, 2)
//	repo := testutils.NewMemoryTaskStore(db)
package testutils
