// Package site holds the static content rendered by the portfolio pages.
package site

// Person is the site owner shown in the header, hero and footer.
type Person struct {
	Name      string
	Title     string
	Email     string
	GitHub    string
	LinkedIn  string
	Instagram string
	ResumeURL string
}

// Project is one entry on the projects page.
type Project struct {
	Title       string
	Description string
	Tech        []string
	URL         string
}

// Content is everything the templates need besides the request.
type Content struct {
	Person   Person
	About    []string
	Skills   []string
	Projects []Project
}

// Default returns the portfolio content.
func Default() Content {
	return Content{
		Person: Person{
			Name:      "Kirusanth",
			Title:     "Computer Engineering Student",
			Email:     "kirusanthpalakanthan5@gmail.com",
			GitHub:    "https://github.com/Kirusanth290",
			LinkedIn:  "https://www.linkedin.com/in/kirusanth-palakanthan/",
			Instagram: "https://instagram.com/kirusanth.05",
			ResumeURL: "/static/resume.pdf",
		},
		About: []string{
			"I'm Kirusanth Palakanthan, a Computer Engineering student at Toronto Metropolitan University " +
				"focused on building practical software + hardware solutions. I enjoy working across full-stack development, " +
				"databases, and embedded systems, turning coursework and projects into clean, reliable systems.",
			"Recently, I built an Oracle SQL + Unix Shell automated DBMS (Ride & Pickup), developed Java OOP projects " +
				"with maintainable design patterns, and built React apps integrating real APIs. I'm especially interested " +
				"in roles where I can combine problem-solving, system thinking, and hands-on development to ship features " +
				"that work end-to-end.",
		},
		Skills: []string{
			"AWS", "Python", "Java", "C++", "C#", "TypeScript", "React/Next.js", "Flask",
			"SQL", "Node.js", "TailwindCSS", "Docker", "GitHub Actions", "Oracle Database",
			"Git", "REST APIs",
		},
		Projects: []Project{
			{
				Title:       "Ride & Pickup DBMS",
				Description: "Automated ride-sharing database with Oracle SQL schemas, views and a Unix shell menu driving every query.",
				Tech:        []string{"Oracle Database", "SQL", "Unix Shell"},
			},
			{
				Title:       "Java OOP Projects",
				Description: "Course projects built around maintainable object-oriented design patterns.",
				Tech:        []string{"Java"},
			},
			{
				Title:       "React API Apps",
				Description: "React front ends integrating real third-party REST APIs.",
				Tech:        []string{"React/Next.js", "TypeScript", "REST APIs"},
			},
		},
	}
}
