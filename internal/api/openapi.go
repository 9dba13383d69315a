package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/cloud-task-manager/internal/api/shared"
	"github.com/phrazzld/cloud-task-manager/internal/config"
	"github.com/phrazzld/cloud-task-manager/internal/domain"
)

// OpenAPIPath serves the generated API document.
const OpenAPIPath = "/api/v1/openapi.json"

// OpenAPIVersion is the OpenAPI release the document conforms to.
const OpenAPIVersion = "3.0.3"

const (
	tagTasks           = "tasks"
	schemaTaskRequest  = "TaskRequest"
	schemaTaskResponse = "TaskResponse"
	schemaError        = "ErrorResponse"
)

func statusValues() []interface{} {
	values := make([]interface{}, 0, len(domain.TaskStatuses()))
	for _, s := range domain.TaskStatuses() {
		values = append(values, string(s))
	}
	return values
}

func schemaRef(name string, value *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, value)
}

func objectSchema(required []string, props openapi3.Schemas) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	s.Required = required
	s.Properties = props
	return s
}

// componentSchemas returns the reusable request, response and error schemas.
func componentSchemas() openapi3.Schemas {
	description := openapi3.NewStringSchema().
		WithMaxLength(domain.MaxDescriptionLength).
		WithNullable()

	taskRequest := objectSchema([]string{"title"}, openapi3.Schemas{
		"title": openapi3.NewStringSchema().
			WithMinLength(1).
			WithMaxLength(domain.MaxTitleLength).
			WithPattern(`\S`).
			NewRef(),
		"description": description.NewRef(),
		"status":      openapi3.NewStringSchema().WithEnum(statusValues()...).WithNullable().NewRef(),
	})

	taskResponse := objectSchema([]string{"id", "title", "description", "status"}, openapi3.Schemas{
		"id":          openapi3.NewInt64Schema().WithMin(1).NewRef(),
		"title":       openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(domain.MaxTitleLength).NewRef(),
		"description": description.NewRef(),
		"status":      openapi3.NewStringSchema().WithEnum(statusValues()...).NewRef(),
	})
	taskResponse.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}

	fields := openapi3.NewObjectSchema()
	fields.AdditionalProperties = openapi3.AdditionalProperties{Schema: openapi3.NewStringSchema().NewRef()}

	errorBody := objectSchema([]string{"status", "error", "message", "path", "timestamp"}, openapi3.Schemas{
		"status":    openapi3.NewIntegerSchema().NewRef(),
		"error":     openapi3.NewStringSchema().NewRef(),
		"message":   openapi3.NewStringSchema().NewRef(),
		"path":      openapi3.NewStringSchema().NewRef(),
		"timestamp": openapi3.NewDateTimeSchema().NewRef(),
		"trace_id":  openapi3.NewStringSchema().NewRef(),
		"fields":    fields.NewRef(),
	})

	return openapi3.Schemas{
		schemaTaskRequest:  taskRequest.NewRef(),
		schemaTaskResponse: taskResponse.NewRef(),
		schemaError:        errorBody.NewRef(),
	}
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema)}
}

// OpenAPIDocument builds the API description from the configured metadata.
// It is descriptive only; no routing or validation depends on it.
func OpenAPIDocument(cfg config.APIConfig) *openapi3.T {
	schemas := componentSchemas()
	taskRequest := schemaRef(schemaTaskRequest, schemas[schemaTaskRequest].Value)
	taskResponse := schemaRef(schemaTaskResponse, schemas[schemaTaskResponse].Value)
	errorBody := schemaRef(schemaError, schemas[schemaError].Value)

	errorResponse := func(description string) *openapi3.ResponseRef {
		return jsonResponse(description, errorBody)
	}

	idParam := &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").
		WithDescription("Task identifier").
		WithSchema(openapi3.NewInt64Schema().WithMin(1))}
	statusParam := &openapi3.ParameterRef{Value: openapi3.NewQueryParameter("status").
		WithDescription("Only return tasks with this status; empty or absent returns all").
		WithSchema(openapi3.NewStringSchema().WithEnum(statusValues()...))}
	taskBody := &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchemaRef(taskRequest)}

	created := openapi3.NewResponse().WithDescription("Task created").WithJSONSchemaRef(taskResponse)
	created.Headers = openapi3.Headers{
		"Location": &openapi3.HeaderRef{Value: &openapi3.Header{Parameter: openapi3.Parameter{
			Description: "URL of the new task",
			Schema:      openapi3.NewStringSchema().NewRef(),
		}}},
	}

	taskList := openapi3.NewArraySchema()
	taskList.Items = taskResponse

	collection := &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: "createTask",
			Summary:     "Create a task",
			Tags:        []string{tagTasks},
			RequestBody: taskBody,
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusCreated, &openapi3.ResponseRef{Value: created}),
				openapi3.WithStatus(http.StatusBadRequest, errorResponse("Invalid request")),
			),
		},
		Get: &openapi3.Operation{
			OperationID: "listTasks",
			Summary:     "List tasks",
			Tags:        []string{tagTasks},
			Parameters:  openapi3.Parameters{statusParam},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("Matching tasks", taskList.NewRef())),
				openapi3.WithStatus(http.StatusBadRequest, errorResponse("Unknown status")),
			),
		},
	}

	item := &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getTask",
			Summary:     "Get a task",
			Tags:        []string{tagTasks},
			Parameters:  openapi3.Parameters{idParam},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("The task", taskResponse)),
				openapi3.WithStatus(http.StatusBadRequest, errorResponse("Invalid id")),
				openapi3.WithStatus(http.StatusNotFound, errorResponse("Task not found")),
			),
		},
		Put: &openapi3.Operation{
			OperationID: "updateTask",
			Summary:     "Update a task",
			Tags:        []string{tagTasks},
			Parameters:  openapi3.Parameters{idParam},
			RequestBody: taskBody,
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("The updated task", taskResponse)),
				openapi3.WithStatus(http.StatusBadRequest, errorResponse("Invalid request")),
				openapi3.WithStatus(http.StatusNotFound, errorResponse("Task not found")),
			),
		},
		Delete: &openapi3.Operation{
			OperationID: "deleteTask",
			Summary:     "Delete a task",
			Tags:        []string{tagTasks},
			Parameters:  openapi3.Parameters{idParam},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusNoContent, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription("Task deleted"),
				}),
				openapi3.WithStatus(http.StatusBadRequest, errorResponse("Invalid id")),
				openapi3.WithStatus(http.StatusNotFound, errorResponse("Task not found")),
			),
		},
	}

	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
		},
		Tags: openapi3.Tags{{Name: tagTasks, Description: "Task management"}},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(TasksBasePath, collection),
			openapi3.WithPath(TasksBasePath+"/{id}", item),
		),
		Components: &openapi3.Components{Schemas: schemas},
	}

	if cfg.DocsURL != "" {
		doc.ExternalDocs = &openapi3.ExternalDocs{Description: "GitHub Repository", URL: cfg.DocsURL}
	}
	return doc
}

// OpenAPIHandler serves the document as JSON.
func OpenAPIHandler(cfg config.APIConfig) http.HandlerFunc {
	doc := OpenAPIDocument(cfg)
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, doc)
	}
}
