package models

import (
	"encoding/json"
	"time"
)

// SiteContent is one named section of the public site.
type SiteContent struct {
	Section   string          `db:"section" json:"section"`
	Content   json.RawMessage `db:"content" json:"content"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// SiteContentRequest is the update payload for a section.
type SiteContentRequest struct {
	Content json.RawMessage `json:"content" validate:"required"`
}

// SiteSections is the fixed, enumerable set of section names. Writes to
// unknown sections fail with a validation error, reads with not-found.
var SiteSections = []string{"hero", "about", "how_it_works", "programs", "impact", "faq", "contact"}

// KnownSection reports whether the section name belongs to the fixed set.
func KnownSection(name string) bool {
	for _, s := range SiteSections {
		if s == name {
			return true
		}
	}
	return false
}

// DefaultSiteContent holds the built-in payload served when a section has
// never been written.
var DefaultSiteContent = map[string]json.RawMessage{
	"hero": json.RawMessage(`{
		"title": "Empowering Vulnerable Communities Through Education",
		"subtitle": "Emunah Academy provides free, quality education to children from underserved communities around the world. Join us in transforming lives through learning.",
		"cta_primary": "Apply Now",
		"cta_secondary": "Learn More"
	}`),
	"about": json.RawMessage(`{
		"title": "About Emunah Academy",
		"description": "Emunah Academy is a non-profit educational organization dedicated to providing quality education to vulnerable communities worldwide. Our mission is to break the cycle of poverty through education, offering comprehensive programs from Kindergarten through 8th grade.",
		"mission": "To empower children from underserved communities with the knowledge, skills, and values they need to succeed in life.",
		"vision": "A world where every child has access to quality education, regardless of their circumstances."
	}`),
	"how_it_works": json.RawMessage(`{
		"title": "How It Works",
		"steps": [
			{"number": "1", "title": "Apply", "description": "Fill out our simple application form with your child's information."},
			{"number": "2", "title": "Review", "description": "Our team reviews your application and contacts you within 48 hours."},
			{"number": "3", "title": "Enroll", "description": "Once approved, your child gains access to our complete learning platform."},
			{"number": "4", "title": "Learn", "description": "Students access video lessons, interactive quizzes, and personalized support."}
		]
	}`),
	"programs": json.RawMessage(`{
		"title": "Our Programs",
		"subtitle": "Comprehensive education from Kindergarten through 8th Grade",
		"grades": [
			{"level": "K", "name": "Kindergarten", "description": "Foundation skills in reading, math, and social development"},
			{"level": "1-2", "name": "Early Elementary", "description": "Building core literacy and numeracy skills"},
			{"level": "3-5", "name": "Upper Elementary", "description": "Expanding knowledge in science, history, and critical thinking"},
			{"level": "6-8", "name": "Middle School", "description": "Preparing students for high school with advanced subjects"}
		]
	}`),
	"impact": json.RawMessage(`{
		"title": "Our Impact",
		"stats": [
			{"number": "500+", "label": "Students Enrolled"},
			{"number": "15+", "label": "Countries Reached"},
			{"number": "50+", "label": "Expert Teachers"},
			{"number": "95%", "label": "Completion Rate"}
		]
	}`),
	"faq": json.RawMessage(`{
		"title": "Frequently Asked Questions",
		"questions": [
			{"question": "Is Emunah Academy really free?", "answer": "Yes! Emunah Academy is completely free for all students. We are funded by generous donors who believe in our mission."},
			{"question": "What grades do you offer?", "answer": "We offer comprehensive education from Kindergarten through 8th grade, covering all core subjects."},
			{"question": "What technology do I need?", "answer": "Students need a device with internet access (computer, tablet, or smartphone) to access our online platform."},
			{"question": "How do I apply?", "answer": "Simply fill out our application form on this page. A parent or guardian must complete the application for students under 18."},
			{"question": "What language are classes taught in?", "answer": "Currently, our classes are taught in English with plans to expand to Spanish and other languages."}
		]
	}`),
	"contact": json.RawMessage(`{
		"title": "Contact Us",
		"email": "info@emunahacademy.org",
		"phone": "",
		"address": ""
	}`),
}
