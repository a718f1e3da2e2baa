package content

const aboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.
When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge outside the screen.`

// Default returns the built-in portfolio.
func Default() *Portfolio {
	return &Portfolio{
		Person: Person{
			Name:        "Zach Kordas-Potter",
			Title:       "Software Developer",
			Description: "Go developer building terminal tools, web backends and the occasional recommender system.",
			Location:    "Minnesota, USA",
			Email:       "zachkordaspotter@gmail.com",
			Github:      "https://github.com/Zachkp",
			Linkedin:    "https://linkedin.com/in/zachkp",
			Resume:      "/static/resume.pdf",
		},
		About: aboutMe,
		Skills: []Skill{
			{Name: "Go", Category: CategoryLanguages, Level: 90},
			{Name: "Python", Category: CategoryLanguages, Level: 80},
			{Name: "JavaScript", Category: CategoryLanguages, Level: 70},
			{Name: "SQL", Category: CategoryLanguages, Level: 75},

			{Name: "Gin", Category: CategoryFrameworks, Level: 85},
			{Name: "HTMX", Category: CategoryFrameworks, Level: 80},
			{Name: "Bubble Tea", Category: CategoryFrameworks, Level: 75},
			{Name: "Alpine.js", Category: CategoryFrameworks, Level: 65},

			{Name: "Git", Category: CategoryTools, Level: 85},
			{Name: "Docker", Category: CategoryTools, Level: 70},
			{Name: "Linux", Category: CategoryTools, Level: 85},

			{Name: "SQLite", Category: CategoryDatabases, Level: 80},
			{Name: "PostgreSQL", Category: CategoryDatabases, Level: 65},

			{Name: "Fly.io", Category: CategoryCloud, Level: 60},
		},
		Projects: []Project{
			{
				ID:           "terminal-mail",
				Title:        "Terminal Mail Client",
				Description:  "A terminal-based email client built in Go with fuzzyfinder capabilities using the Charmbracelet TUI framework and go-imap.",
				Technologies: []string{"Go", "Bubble Tea", "go-imap"},
				GithubURL:    "https://github.com/Zachkp",
				Featured:     true,
				Status:       StatusCompleted,
				Year:         2025,
				Category:     "Tools",
			},
			{
				ID:           "terminal-music",
				Title:        "Terminal Music Player",
				Description:  "A terminal-based music streaming application built in Go with an elegant TUI interface, leveraging yt-dlp and mpv for YouTube Music playback from the command line.",
				Technologies: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
				GithubURL:    "https://github.com/Zachkp",
				Featured:     true,
				Status:       StatusCompleted,
				Year:         2025,
				Category:     "Tools",
			},
			{
				ID:           "game-recommender",
				Title:        "Game Recommender",
				Description:  "A machine learning web application that uses TF-IDF vectorization and cosine similarity to recommend games, with interactive visualizations and filtering by reviews and ratings.",
				Technologies: []string{"Python", "scikit-learn", "Pandas"},
				Featured:     true,
				Status:       StatusCompleted,
				Year:         2023,
				Category:     "AI/ML",
			},
			{
				ID:           "portfolio",
				Title:        "Portfolio Website",
				Description:  "This site: Go, Gin and HTMX with server-side form handling and a live navigation channel.",
				Technologies: []string{"Go", "Gin", "HTMX", "Tailwind CSS", "SQLite"},
				GithubURL:    "https://github.com/Zachkp/devfolio",
				Featured:     false,
				Status:       StatusInProgress,
				Year:         2025,
				Category:     "Web Development",
			},
		},
		Experience: []Experience{
			{
				ID:        "target",
				Title:     "Presentation Expert",
				Company:   "Target",
				StartDate: "Aug 2023",
				LogoPath:  "images/TargetLogo.jpg",
				Description: []string{
					"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
					"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
					"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
				},
				Type: EntryWork,
			},
			{
				ID:        "jasons",
				Title:     "Manager",
				Company:   "Jasons Catered Events",
				StartDate: "Aug 2016",
				LogoPath:  "images/jasonsCateringLogo.png",
				Description: []string{
					"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
					"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems",
					"Maintained supply inventory and coordinated timely delivery between venues",
				},
				Type: EntryWork,
			},
			{
				ID:        "wgu",
				Title:     "Bachelor of Computer Science",
				Company:   "Western Governors University",
				StartDate: "Sept 2019",
				EndDate:   "May 2023",
				LogoPath:  "images/WGU-logo.png",
				Description: []string{
					"Graduated Magna Cum Laude with 3.8 GPA",
					"Relevant coursework: Data Structures, Algorithms, Web Development",
					"Senior project: Machine Learning recommendation system",
				},
				Type: EntryEducation,
			},
			{
				ID:        "comptia",
				Title:     "Project Management",
				Company:   "CompTIA",
				StartDate: "July 2022",
				LogoPath:  "images/comptiaCert.png",
				Description: []string{
					"Certified in agile project management methodology",
				},
				Type: EntryCertification,
			},
		},
		Social: SocialLinks{
			Github:   "https://github.com/Zachkp",
			Linkedin: "https://linkedin.com/in/zachkp",
			Email:    "mailto:zachkordaspotter@gmail.com",
		},
		Site: Site{
			Name:        "Zach Kordas-Potter",
			Description: "Software Developer",
		},
	}
}
