// Package schemas provides JSON Schema validation for wire-format payloads.
package schemas

// ResumeRecordSchema is the import contract: a payload must at minimum carry
// id, title and data, and typed fields must match the persisted shape.
const ResumeRecordSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ResumeRecord",
  "type": "object",
  "required": ["id", "title", "data"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "title": { "type": "string" },
    "template": { "type": "string" },
    "createdAt": { "type": "string" },
    "updatedAt": { "type": "string" },
    "data": {
      "type": "object",
      "properties": {
        "fullName": { "type": "string" },
        "email": { "type": "string" },
        "phone": { "type": "string" },
        "location": { "type": "string" },
        "linkedin": { "type": "string" },
        "website": { "type": "string" },
        "github": { "type": "string" },
        "summary": { "type": "string" },
        "education": { "type": "array", "items": { "type": "object" } },
        "experience": { "type": "array", "items": { "type": "object" } },
        "skills": { "type": "array", "items": { "type": "string" } },
        "projects": { "type": "array", "items": { "type": "object" } },
        "certifications": { "type": "array", "items": { "type": "object" } },
        "languages": { "type": "array", "items": { "type": "object" } }
      }
    }
  }
}`
