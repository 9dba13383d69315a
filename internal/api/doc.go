// Package api handles incoming HTTP requests, request validation and
// response formatting for the task API. It adapts HTTP concerns to the
// operations of service.TaskService.
//
// Routes are registered on a chi router by TaskHandler.RegisterRoutes and
// the OpenAPI document describing them is built by OpenAPIDocument.
package api
