package content

var (
	AboutIntro = `I’m a full-stack developer and AI enthusiast with a strong foundation in software engineering, on-device
	intelligence, and intuitive UX. During my internships at CuesHub and Oracode, I’ve built cross-platform apps, led
	scalable Flutter development for large teams, and developed multilingual NLP systems that deliver smart, real-time feedback.`

	AboutProjects = `I’ve created Fluffi, an AI-powered memory assistant that predicts future memory needs using behavioral
	embeddings. I also built AURA, an autonomous financial dashboard with explainable agents for credit and compliance
	decisions, and Elevatr, a career pivot platform that recommends personalized project paths based on a user’s goals and
	evolving job market trends. I co-authored an IEEE-published XR training system for NASA, where I worked on real-time
	astronaut simulation in Unreal Engine.`

	AboutBeyond = `Beyond building software, I love writing stories. I’m drawn to ideas that blend creativity and technology,
	and I enjoy crafting experiences that are not only functional but also emotionally resonant. Whether I’m exploring new
	tools, contributing to open-source, or refining an interface, I focus on making digital experiences intelligent,
	transparent, and meaningful.`

	ContactIntro = `I'm always interested in hearing about new projects and opportunities.
	Whether you have a question or just want to say hi, feel free to reach out!`

	FluffiDescription = `An AI assistant that simulates memory decay using behavioral embeddings and on-device NLP to
	proactively resurface relevant past experiences.`

	AuraDescription = `A ML-powered dashboard integrating FRED and FX APIs to analyze macro trends, credit risks, and user
	alerts across 50K+ daily data points, alongside an autonomous, modular AI system for explainable credit and compliance
	decisions, reducing manual review time by 60%.`

	XRDescription = `Built a real-time XR astronaut training simulation in Unreal Engine for NASA, optimizing CAD assets and
	scripting procedures in Blueprints with <5% frame drop. Published in IEEE SMC-ITSCC 2025 for work on Gateway and lunar
	mission visualization tools. (Source code and materials protected under NDA).`
)
