package content

// Default returns the portfolio shipped with the site.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:  "Christine Xu",
			Roles: []string{"Full Stack Developer.", "UI/UX Designer.", "Problem Solver.", "Creative Thinker."},
			About: []string{AboutIntro, AboutProjects, AboutBeyond},
			Tags: []Tag{
				{Icon: "fas fa-code", Label: "Intelligent Systems"},
				{Icon: "fas fa-palette", Label: "Purposeful Design"},
				{Icon: "fas fa-rocket", Label: "Systems Thinking"},
			},
			Contact: Contact{
				Intro:        ContactIntro,
				Email:        "cxu627@gmail.com",
				Phone:        "+1 (281) 570-5118",
				Location:     "The Woodlands, TX",
				Confirmation: "Thanks for reaching out! I'll get back to you soon.",
			},
			Social: []Link{
				{Label: "Featured", Icon: "fas fa-star", URL: "/assets/Christine_Xu_Resume_AppleAI.pdf"},
				{Label: "GitHub", Icon: "fab fa-github", URL: "https://github.com/tinexu"},
				{Label: "LinkedIn", Icon: "fab fa-linkedin", URL: "https://www.linkedin.com/in/christinexu1211/"},
			},
			Footer: "© 2025 Christine Xu",
		},
		Experience: []Experience{
			{
				Title:    "Software Engineering & App Intern",
				Company:  "CuesHub",
				Period:   "July 2025 – Present",
				Location: "Memphis, TN",
				Bullets: []string{
					"Designed a modular Flutter app with dynamic calendar integration and local-first storage for real-time health tracking",
					"Developed an AI insights engine that increased engagement by 40 percent through personalized health prompts",
					"Simulated future user states using task trends and input data to model lifestyle trajectories",
					"Built a habit forecasting engine using time series patterns to recommend high-impact nudges",
				},
				Tech: []string{"Flutter", "On-device Machine Learning", "Time Series Analysis", "Behavioral Modeling"},
			},
			{
				Title:    "App Development Intern & Lead",
				Company:  "Oracode",
				Period:   "July 2025 – Present",
				Location: "Remote",
				Bullets: []string{
					"Led Flutter dev for an offline-first educational app with full routing, state, and theming",
					"Built game and sandbox modes using custom Blockly-based simulation logic",
					"Developed on-device NLP for multilingual interactions and AI feedback",
					"Designed real-time features with local storage to support interactive learning",
				},
				Tech: []string{"Flutter", "Blockly/Visual Programming", "On-device NLP", "State Management"},
			},
			{
				Title:    "Marketing and Membership Coordinator",
				Company:  "Fitness Project",
				Period:   "May 2025 – August 2025",
				Location: "The Woodlands, TX",
				Bullets: []string{
					"Managed CRM operations using ABC Fitness and GymSales to track memberships, automate outreach, and optimize client pipelines",
					"Operated Ignite Sales platform for lead generation and performance tracking across marketing campaigns",
					"Used data dashboards and reporting tools to monitor KPIs and improve member engagement",
					"Streamlined communication workflows between departments through platform integrations and digital tools",
				},
				Tech: []string{"CRM Management", "Marketing Automation", "Data Reporting", "Lead Pipeline Optimization"},
			},
		},
		Projects: []Project{
			{
				Title:       "Fluffi",
				Description: FluffiDescription,
				Tech:        []string{"Flutter", "Dart", "Hive", "On-device NLP", "Semantic Search", "Behavioral Embeddings"},
				Image:       "/assets/fluffi.png",
				Demo:        "#",
				GitHub:      "https://github.com/tinexu/cm-aug-system",
			},
			{
				Title:       "AURA",
				Description: AuraDescription,
				Tech:        []string{"Machine Learning", "API Integration", "Explainable AI", "Agentic AI", "Credit Risk Modeling"},
				Image:       "/assets/AURA.png",
				Demo:        "#",
				GitHub:      "https://github.com/tinexu/aura",
			},
			{
				Title:       "CAD-Driven XR Simulation Engine for NASA Missions",
				Description: XRDescription,
				Tech:        []string{"Unreal Engine/Blueprints", "XR Simulation Development", "3D Asset Optimization", "Performance Tuning", "Scientific Visualization"},
				Image:       "/assets/GVT-Image.png",
				Demo:        "#",
				GitHub:      "#",
				Private:     true,
			},
		},
		Skills: []Skill{
			{Name: "Python", Level: 90, Color: "#537efcff"},
			{Name: "React", Level: 85, Color: "#66bfff"},
			{Name: "Flutter", Level: 80, Color: "#8457f7ff"},
			{Name: "TensorFlow Lite", Level: 75, Color: "#ff51c5ff"},
			{Name: "Multi-Agent Systems", Level: 85, Color: "#ff88c2"},
			{Name: "On-device ML", Level: 80, Color: "#bf9bf8ff"},
		},
	}
}
