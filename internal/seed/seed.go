// Package seed provides the baked-in entry list priming the first-run
// experience. Persisted data, once present, replaces it entirely.
package seed

import "github.com/Abhi22shek/portfolio-core/internal/models"

// Entries returns a fresh copy of the default project list, newest first.
func Entries() []models.Entry {
	return []models.Entry{
		{
			ID:          "fullstack-chat-app",
			Title:       "FullStack Real-time Chat Application",
			Description: "Real-time chat where users securely sign up, log in, and exchange instant messages, images, and documents, with online/offline status and profile customization.",
			Tags:        []string{"backend", "React", "Node.js", "Socket.io", "MongoDB"},
			Media:       "https://example.com/previews/project-4.png",
			Featured:    true,
			CreatedAt:   1712707200,
		},
		{
			ID:          "imagify",
			Title:       "Imagify Text to Photos Generation",
			Description: "A fully responsive AI SaaS MERN application where users buy credits and spend them to generate photos from text.",
			Tags:        []string{"backend", "React", "Node.js", "MongoDB", "Razorpay"},
			Media:       "https://example.com/previews/project-3.png",
			Featured:    true,
			CreatedAt:   1709942400,
		},
		{
			ID:          "iphone-3d-website",
			Title:       "3D iPhone Website",
			Description: "A fully responsive 3D iPhone showcase website with an interactive user interface, optimized for all screen sizes.",
			Tags:        []string{"frontend", "React", "Three.js", "GSAP", "Tailwind"},
			Media:       "https://example.com/previews/project-1.png",
			Featured:    true,
			CreatedAt:   1707177600,
		},
		{
			ID:          "interactive-quiz",
			Title:       "Interactive Quiz Platform",
			Description: "An interactive quiz platform with timed quizzes, answer feedback highlighting wrong and correct options, and history tracking.",
			Tags:        []string{"frontend", "React", "Tailwind"},
			Media:       "https://example.com/previews/project-2.png",
			Featured:    true,
			CreatedAt:   1704585600,
		},
	}
}
