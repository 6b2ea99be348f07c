package storage

import "github.com/aanand-mishra/edulearn/internal/types"

var (
	johnDoe     = types.Instructor{Name: "John Doe", Email: "john@example.com"}
	janeSmith   = types.Instructor{Name: "Jane Smith", Email: "jane@example.com"}
	mikeJohnson = types.Instructor{Name: "Mike Johnson", Email: "mike@example.com"}
)

// SeedCourses returns a fresh copy of the course fixtures every backend
// starts from.
func SeedCourses() []types.Course {
	return []types.Course{
		{
			ID:               "1",
			Title:            "Complete Web Development Bootcamp",
			Description:      "Learn HTML, CSS, JavaScript, React, Node.js and more!",
			Category:         "Development",
			Price:            89.99,
			OriginalPrice:    199.99,
			Duration:         60,
			Rating:           4.8,
			StudentsEnrolled: 1500,
			Instructor:       johnDoe,
		},
		{
			ID:               "2",
			Title:            "Data Science & Machine Learning",
			Description:      "Python, Pandas, NumPy, Scikit-learn, TensorFlow",
			Category:         "Data Science",
			Price:            99.99,
			OriginalPrice:    249.99,
			Duration:         80,
			Rating:           4.9,
			StudentsEnrolled: 1200,
			Instructor:       janeSmith,
		},
		{
			ID:               "3",
			Title:            "Digital Marketing Mastery",
			Description:      "SEO, Social Media, Google Ads, Analytics",
			Category:         "Marketing",
			Price:            79.99,
			OriginalPrice:    179.99,
			Duration:         45,
			Rating:           4.7,
			StudentsEnrolled: 800,
			Instructor:       mikeJohnson,
		},
	}
}

// SeedVideos returns a fresh copy of the video fixtures.
func SeedVideos() []types.Video {
	return []types.Video{
		{
			ID:          "1",
			Title:       "HTML & CSS Crash Course",
			Description: "Learn the fundamentals of web development with HTML and CSS in this comprehensive tutorial.",
			YoutubeID:   "hdI2bqOjy3c",
			Duration:    45,
			Views:       12000,
			Category:    "Development",
			Instructor:  johnDoe,
		},
		{
			ID:          "2",
			Title:       "JavaScript Fundamentals",
			Description: "Master JavaScript basics including variables, functions, and DOM manipulation.",
			YoutubeID:   "DLX62G4lc44",
			Duration:    60,
			Views:       18000,
			Category:    "Development",
			Instructor:  johnDoe,
		},
		{
			ID:          "3",
			Title:       "React.js Tutorial for Beginners",
			Description: "Learn React.js from scratch with practical examples and projects.",
			YoutubeID:   "jS4aFq5-91M",
			Duration:    120,
			Views:       25000,
			Category:    "Development",
			Instructor:  janeSmith,
		},
	}
}
