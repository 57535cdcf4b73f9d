package api

// Response schemas for the endpoints this client consumes. Every
// success body is wrapped in the `{data: ...}` envelope; the inner
// shapes below are what each endpoint promises.

// userObject is the shape of a user as returned by the server.
var userObject = map[string]any{
	"type":     "object",
	"required": []any{"id", "email"},
	"properties": map[string]any{
		"id":    map[string]any{"type": []any{"string", "integer"}},
		"email": map[string]any{"type": "string"},
		"name":  map[string]any{"type": "string"},
		"role":  map[string]any{"type": "string"},
	},
}

// LoginResponseSchema covers POST /users/login and POST /users/register:
// `{data: {idToken, user}}`.
var LoginResponseSchema = envelopeSchema("auth-login", map[string]any{
	"type":     "object",
	"required": []any{"idToken", "user"},
	"properties": map[string]any{
		"idToken": map[string]any{"type": "string", "minLength": 1},
		"user":    userObject,
	},
})

// MeResponseSchema covers GET /users/me: `{data: {user}}`.
var MeResponseSchema = envelopeSchema("auth-me", map[string]any{
	"type":     "object",
	"required": []any{"user"},
	"properties": map[string]any{
		"user": userObject,
	},
})

// JoinResponseSchema covers POST /classrooms/join. The classroomId
// field is deliberately not required here: the join service treats its
// absence as a domain error with a specific message, not a shape crash.
var JoinResponseSchema = envelopeSchema("classroom-join", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"classroomId": map[string]any{"type": []any{"string", "integer"}},
	},
})

// ClassroomDetailsSchema covers GET /classrooms/{id}/details.
var ClassroomDetailsSchema = envelopeSchema("classroom-details", map[string]any{
	"type":     "object",
	"required": []any{"id", "name"},
	"properties": map[string]any{
		"id":           map[string]any{"type": []any{"string", "integer"}},
		"name":         map[string]any{"type": "string"},
		"teacherName":  map[string]any{"type": "string"},
		"classCode":    map[string]any{"type": "string"},
		"studentCount": map[string]any{"type": "integer"},
	},
})

// MaterialsSchema covers GET /classrooms/{id}/materials.
var MaterialsSchema = envelopeSchema("classroom-materials", map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "title"},
	},
})

// AssignmentsSchema covers GET /classrooms/{id}/assignments.
var AssignmentsSchema = envelopeSchema("classroom-assignments", map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "title"},
	},
})
