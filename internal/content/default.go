package content

// Default returns the built-in portfolio.
func Default() Portfolio {
	return Portfolio{
		Name: "Shameel K",
		Hero: Hero{
			Title:    "Frontend",
			Accent:   "Engineer",
			Subtitle: "Frontend Engineer with 2+ years of experience building responsive, high-performance web apps using React, TypeScript, and modern JavaScript libraries.",
			Resume:   "/resume.pdf",
			Social: []Link{
				{Label: "GitHub", URL: "https://github.com/sham-l81443"},
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/shameelk"},
				{Label: "Email", URL: "mailto:shameel81443@gmail.com"},
			},
		},
		About: About{
			Paragraphs: []string{
				"Frontend Engineer with 2 years of experience building responsive, high-performance web apps using React, TypeScript, and modern JavaScript libraries. Skilled in developing scalable, accessible, and pixel-perfect UIs with a strong focus on user experience, performance, and clean architecture.",
				"Adept at integrating APIs, optimizing UI workflows, and collaborating in agile teams to deliver polished, production-ready features. Known for attention to detail, code quality, and driving continuous UI/UX improvements.",
				"Currently working as a Junior Software Engineer at Nivid Solutions, where I create reusable React components, manage state with Redux and Zustand, and build full-stack features with Express.js and Prisma.",
			},
			Tags: []string{"React", "Next.js", "TypeScript", "Redux", "Zustand", "React Query", "Tailwind CSS", "shadcn/ui", "Express.js", "Prisma"},
			Stats: []Stat{
				{Number: 2, Label: "Years Experience", Suffix: "+"},
				{Number: 10, Label: "Projects Completed", Suffix: "+"},
				{Number: 15, Label: "Technologies Mastered", Suffix: "+"},
				{Number: 100, Label: "Client Satisfaction", Suffix: "%"},
			},
		},
		Skills: []Skill{
			{Name: "React", Level: 95, Category: "Frontend"},
			{Name: "Next.js", Level: 90, Category: "Framework"},
			{Name: "TypeScript", Level: 88, Category: "Language"},
			{Name: "JavaScript", Level: 95, Category: "Language"},
			{Name: "Redux", Level: 85, Category: "State Management"},
			{Name: "Zustand", Level: 80, Category: "State Management"},
			{Name: "React Query", Level: 88, Category: "State Management"},
			{Name: "React Context", Level: 92, Category: "State Management"},
			{Name: "Tailwind CSS", Level: 92, Category: "Styling"},
			{Name: "Material-UI", Level: 85, Category: "Styling"},
			{Name: "CSS/SCSS", Level: 90, Category: "Styling"},
			{Name: "Express.js", Level: 80, Category: "Backend"},
			{Name: "Prisma", Level: 75, Category: "Database"},
			{Name: "React Hook Form", Level: 90, Category: "Forms"},
			{Name: "Zod", Level: 85, Category: "Validation"},
			{Name: "shadcn/ui", Level: 88, Category: "Components"},
			{Name: "Radix UI", Level: 82, Category: "Components"},
			{Name: "GSAP", Level: 85, Category: "Animation"},
		},
		Projects: []Project{
			{
				Title:        "ConfGo – Event Management Platform",
				Description:  "Developed core modules for event browsing, registration, billing, and checkout using React and TypeScript. Built reusable UI components with Tailwind CSS, MUI, and shadcn/ui for a scalable design system.",
				Technologies: []string{"React", "TypeScript", "Tailwind CSS", "MUI", "shadcn/ui", "Zustand", "React Hook Form"},
				Image:        "/CONFGO.png",
				GitHub:       "#",
				Live:         "https://confgo.com",
				Featured:     true,
			},
			{
				Title:        "CRM Application for Debt Settlement",
				Description:  "Developed core UI modules for U.S.-based CRM using React and TypeScript, including lead listings, detail views, email workflows, and bank detail rendering with REST and GraphQL API integration.",
				Technologies: []string{"React", "TypeScript", "Redux", "GraphQL", "Express.js", "shadcn/ui"},
				Image:        "/crm.png",
				GitHub:       "#",
				Featured:     true,
			},
			{
				Title:        "Nanma Mall (E-Commerce)",
				Description:  "Developed core UI features for a small-scale e-commerce platform using React and Bootstrap, including product listings, details, cart, and user settings with React Query for data fetching.",
				Technologies: []string{"React", "Bootstrap", "React Query", "React Hook Form", "REST API"},
				Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=500&h=300&fit=crop",
				GitHub:       "#",
			},
			{
				Title:        "PhyMe Learning – LMS Platform",
				Description:  "Built a full-stack Learning Management System from scratch using React, Next.js, and TypeScript with dynamic content system, quizzes, and note-taking features. Currently in development.",
				Technologies: []string{"React", "Next.js", "TypeScript", "Zustand", "React Query", "Express.js", "Prisma", "PostgreSQL"},
				Image:        "/phymelearning.png",
				GitHub:       "#",
				Live:         "https://phymelearning.com",
			},
		},
		Contact: []ContactEntry{
			{Title: "Email", Value: "shameel81443@gmail.com", Description: "Send me an email anytime"},
			{Title: "Phone", Value: "+91 6238830867"},
			{Title: "Location", Value: "Kannur, Kerala, India", Description: "Open to remote work"},
		},
	}
}
