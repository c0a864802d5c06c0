package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Emunah Academy API",
        "description": "Backend for the Emunah Academy learning platform",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration, login and profile"},
        {"name": "Users", "description": "User directory"},
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Lessons", "description": "Lessons and completion tracking"},
        {"name": "Quizzes", "description": "Quiz submission and grading"},
        {"name": "Evaluations", "description": "Graded assignments"},
        {"name": "Calendar", "description": "Calendar events"},
        {"name": "Enrollments", "description": "Course enrollment"},
        {"name": "Progress", "description": "Per-student progress"},
        {"name": "Parents", "description": "Parent-student links"},
        {"name": "Messages", "description": "Direct messaging"},
        {"name": "Site Content", "description": "Public site sections"},
        {"name": "Applications", "description": "Admission applications"},
        {"name": "Statistics", "description": "Platform counts"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and obtain an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user profile",
                "parameters": [
                    {"name": "Authorization", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "grade_level", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/grade": {
            "put": {
                "tags": ["Users"],
                "summary": "Set a student's grade level",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"grade_level": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Not a student"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "integer"},
                    {"name": "published_only", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Role may not own courses"},
                    "404": {"description": "Teacher not found"}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course and dependents",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/courses/{id}/publish": {
            "post": {
                "tags": ["Courses"],
                "summary": "Publish course",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/courses/{id}/lessons": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List course lessons in order",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/lessons": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Create lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/lessons/{id}": {
            "get": {
                "tags": ["Lessons"],
                "summary": "Get lesson",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Lessons"],
                "summary": "Update lesson",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Lessons"],
                "summary": "Delete lesson",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/lessons/{id}/complete": {
            "post": {
                "tags": ["Lessons"],
                "summary": "Mark lesson completed for a student",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "student_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Lesson or student not found"}
                }
            }
        },
        "/quizzes/submit": {
            "post": {
                "tags": ["Quizzes"],
                "summary": "Submit and grade a quiz attempt",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/QuizSubmission"}}
                ],
                "responses": {
                    "201": {"description": "Graded result"},
                    "400": {"description": "Lesson is not a quiz"}
                }
            }
        },
        "/quizzes/results/{student_id}": {
            "get": {
                "tags": ["Quizzes"],
                "summary": "List a student's quiz results",
                "parameters": [
                    {"name": "student_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/evaluations": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "List evaluations",
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Evaluations"],
                "summary": "Create evaluation",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/evaluations/{id}": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "Get evaluation",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/evaluations/{id}/submissions": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "List submissions with student names",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/evaluations/submit": {
            "post": {
                "tags": ["Evaluations"],
                "summary": "Hand in an evaluation",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Evaluation or student not found"}
                }
            }
        },
        "/evaluations/grade": {
            "post": {
                "tags": ["Evaluations"],
                "summary": "Grade a submission",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Submission not found"}
                }
            }
        },
        "/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List events ordered by start time",
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "integer"},
                    {"name": "start_date", "in": "query", "type": "string"},
                    {"name": "end_date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create event",
                "parameters": [
                    {"name": "created_by", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Creator not found"}
                }
            }
        },
        "/calendar/{id}": {
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/enrollments": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List enrollments",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer"},
                    {"name": "course_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll a student",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Already enrolled"}
                }
            }
        },
        "/enrollments/{id}": {
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Remove enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/progress/{student_id}": {
            "get": {
                "tags": ["Progress"],
                "summary": "Per-course progress for a student",
                "parameters": [
                    {"name": "student_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/progress/{student_id}/export": {
            "get": {
                "tags": ["Progress"],
                "summary": "Download progress report",
                "parameters": [
                    {"name": "student_id", "in": "path", "type": "integer", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/parents/link": {
            "post": {
                "tags": ["Parents"],
                "summary": "Link a parent to a student",
                "responses": {
                    "201": {"description": "Linked"},
                    "400": {"description": "Role violation"},
                    "409": {"description": "Link already exists"}
                }
            }
        },
        "/parents/{id}/children": {
            "get": {
                "tags": ["Parents"],
                "summary": "Linked children with progress",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Parent not found"}
                }
            }
        },
        "/messages": {
            "post": {
                "tags": ["Messages"],
                "summary": "Send a message",
                "parameters": [
                    {"name": "sender_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Sender or receiver not found"}
                }
            }
        },
        "/messages/{id}": {
            "get": {
                "tags": ["Messages"],
                "summary": "Conversation thread with a counterparty",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "user_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/messages/{id}/read": {
            "post": {
                "tags": ["Messages"],
                "summary": "Mark one message read",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/messages/read-all": {
            "post": {
                "tags": ["Messages"],
                "summary": "Mark all messages from a counterparty read",
                "parameters": [
                    {"name": "user_id", "in": "query", "type": "integer", "required": true},
                    {"name": "other_user_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/messages/contacts": {
            "get": {
                "tags": ["Messages"],
                "summary": "Reachable contacts for a user",
                "parameters": [
                    {"name": "user_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/messages/conversations": {
            "get": {
                "tags": ["Messages"],
                "summary": "Conversation summaries, newest first",
                "parameters": [
                    {"name": "user_id", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/site-content": {
            "get": {
                "tags": ["Site Content"],
                "summary": "All sections with defaults",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/site-content/{section}": {
            "get": {
                "tags": ["Site Content"],
                "summary": "Get a section",
                "parameters": [
                    {"name": "section", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown section"}
                }
            },
            "put": {
                "tags": ["Site Content"],
                "summary": "Replace a section payload",
                "parameters": [
                    {"name": "section", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown section"}
                }
            }
        },
        "/applications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications newest first",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Applications"],
                "summary": "File a new application",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "tags": ["Applications"],
                "summary": "Get application",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Applications"],
                "summary": "Delete application",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/applications/{id}/status": {
            "put": {
                "tags": ["Applications"],
                "summary": "Review an application",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "reviewed_by", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Role may not review"}
                }
            }
        },
        "/statistics": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Platform counts",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "role", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["superuser", "director", "teacher", "student", "parent"]},
                "grade_level": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CourseRequest": {
            "type": "object",
            "required": ["title", "description"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "thumbnail_url": {"type": "string"},
                "grade_level": {"type": "string"}
            }
        },
        "LessonRequest": {
            "type": "object",
            "required": ["course_id", "title", "lesson_type", "content"],
            "properties": {
                "course_id": {"type": "integer"},
                "title": {"type": "string"},
                "lesson_type": {"type": "string", "enum": ["video", "text", "quiz"]},
                "content": {"type": "string"},
                "order": {"type": "integer"}
            }
        },
        "QuizSubmission": {
            "type": "object",
            "required": ["lesson_id"],
            "properties": {
                "lesson_id": {"type": "integer"},
                "answers": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
