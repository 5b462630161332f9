package llm

import "fmt"

// The model is boxed in hard: strict JSON against the plan schema, unique
// module ids, placeholder resources only. Real links come from curation.
const systemInstruction = "You are CourseCraft AI, an expert instructional designer. " +
	"Your task is to generate a comprehensive, structured learning roadmap " +
	"based on the user's request. Your output MUST be a valid JSON object " +
	"that strictly conforms to the provided schema. " +
	"Ensure the 'id' field for each module is a unique UUID string. " +
	"DO NOT include real external links for resources; use placeholder titles " +
	"and generic URLs (e.g., 'https://placeholder.com/resource'). " +
	"The resource 'type' must be one of: 'video', 'article', or 'project'."

func userPrompt(req GenerateRequest, userName string) string {
	return fmt.Sprintf(
		"Generate a personalized course titled: 'The %s Road to %s Mastery' for %s. "+
			"The roadmap should be split into 6 structured weeks. "+
			"Focus on core concepts for a %s level. "+
			"For each module, suggest a realistic duration in hours (5-10 hours). "+
			"Generate 3 placeholder resources for each module, mixing video, article, and project types.",
		req.Level, req.Field, userName, req.Level,
	)
}

// planResponseSchema is the OpenAPI-subset schema passed to generateContent
// so the API itself constrains the output shape. ParsePlan still validates;
// the model is not trusted to honor this.
var planResponseSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title": map[string]interface{}{"type": "string"},
		"modules": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":            map[string]interface{}{"type": "string"},
					"week":          map[string]interface{}{"type": "integer"},
					"title":         map[string]interface{}{"type": "string"},
					"description":   map[string]interface{}{"type": "string"},
					"durationHours": map[string]interface{}{"type": "integer"},
					"resources": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"title": map[string]interface{}{"type": "string"},
								"url":   map[string]interface{}{"type": "string"},
								"type": map[string]interface{}{
									"type": "string",
									"enum": []string{"video", "article", "project"},
								},
							},
							"required": []string{"title", "url", "type"},
						},
					},
				},
				"required": []string{"id", "week", "title", "description", "durationHours", "resources"},
			},
		},
	},
	"required": []string{"title", "modules"},
}
