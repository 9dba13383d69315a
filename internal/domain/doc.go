// Package domain holds the Task entity, its status values, and the
// validation rules every stored task satisfies.
package domain
