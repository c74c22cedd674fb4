package catalog

// Static candidate lists, in catalog order. Order matters: empty-query
// suggestions and tie-breaking both follow it.

var degrees = []string{
	"Bachelor of Science (B.S.)",
	"Bachelor of Arts (B.A.)",
	"Bachelor of Engineering (B.Eng.)",
	"Bachelor of Business Administration (BBA)",
	"Bachelor of Fine Arts (BFA)",
	"Bachelor of Technology (B.Tech)",
	"Bachelor of Commerce (B.Com)",
	"Master of Science (M.S.)",
	"Master of Arts (M.A.)",
	"Master of Engineering (M.Eng.)",
	"Master of Business Administration (MBA)",
	"Master of Fine Arts (MFA)",
	"Master of Technology (M.Tech)",
	"Master of Education (M.Ed.)",
	"Master of Public Administration (MPA)",
	"Master of Social Work (MSW)",
	"Doctor of Philosophy (Ph.D.)",
	"Doctor of Medicine (M.D.)",
	"Doctor of Dental Surgery (DDS)",
	"Juris Doctor (J.D.)",
	"Doctor of Education (Ed.D.)",
	"Doctor of Business Administration (DBA)",
	"Associate of Arts (A.A.)",
	"Associate of Science (A.S.)",
	"Associate of Applied Science (AAS)",
	"Professional Certificate",
	"High School Diploma",
	"General Education Development (GED)",
	"Postgraduate Diploma",
	"Graduate Certificate",
}

var majors = []string{
	"Computer Science",
	"Information Technology",
	"Software Engineering",
	"Computer Engineering",
	"Data Science",
	"Artificial Intelligence",
	"Cybersecurity",
	"Information Systems",
	"Business Administration",
	"Finance",
	"Accounting",
	"Marketing",
	"Management",
	"Economics",
	"International Business",
	"Entrepreneurship",
	"Human Resources",
	"Mechanical Engineering",
	"Electrical Engineering",
	"Civil Engineering",
	"Chemical Engineering",
	"Aerospace Engineering",
	"Biomedical Engineering",
	"Industrial Engineering",
	"Environmental Engineering",
	"Psychology",
	"Sociology",
	"Anthropology",
	"Political Science",
	"International Relations",
	"English Literature",
	"Communications",
	"Journalism",
	"Creative Writing",
	"Linguistics",
	"Biology",
	"Chemistry",
	"Physics",
	"Mathematics",
	"Statistics",
	"Nursing",
	"Medicine",
	"Pharmacy",
	"Public Health",
	"Healthcare Administration",
	"Architecture",
	"Interior Design",
	"Graphic Design",
	"Fashion Design",
	"Industrial Design",
	"Music",
	"Theater",
	"Dance",
	"Film Studies",
	"Photography",
	"History",
	"Philosophy",
	"Religious Studies",
	"Classics",
	"Archaeology",
	"Law",
	"Criminal Justice",
	"Forensic Science",
	"Criminology",
	"Education",
	"Early Childhood Education",
	"Special Education",
	"Educational Technology",
	"Environmental Science",
	"Geography",
	"Geology",
	"Meteorology",
	"Agriculture",
	"Animal Science",
	"Forestry",
	"Horticulture",
	"Sports Management",
	"Exercise Science",
	"Kinesiology",
	"Physical Education",
	"Hospitality Management",
	"Tourism Management",
	"Culinary Arts",
	"Social Work",
	"Counseling",
	"Public Policy",
	"Urban Planning",
	"Library Science",
	"Information Management",
	"Archives Management",
	"Biotechnology",
	"Genetics",
	"Microbiology",
	"Biochemistry",
	"Astrophysics",
	"Quantum Physics",
	"Theoretical Physics",
	"Supply Chain Management",
	"Operations Management",
	"Project Management",
	"Real Estate",
	"Insurance",
	"Banking",
	"Investment Management",
}

var universities = []string{
	"Harvard University",
	"Stanford University",
	"Massachusetts Institute of Technology (MIT)",
	"California Institute of Technology (Caltech)",
	"Princeton University",
	"Yale University",
	"Columbia University",
	"University of Chicago",
	"University of Pennsylvania",
	"Johns Hopkins University",
	"Northwestern University",
	"Duke University",
	"Cornell University",
	"Brown University",
	"Dartmouth College",
	"University of California, Berkeley",
	"University of California, Los Angeles (UCLA)",
	"University of California, San Diego",
	"University of California, Santa Barbara",
	"University of Michigan",
	"University of Illinois Urbana-Champaign",
	"Carnegie Mellon University",
	"Georgia Institute of Technology",
	"University of Texas at Austin",
	"University of Washington",
	"New York University",
	"Boston University",
	"University of Southern California",
	"University of Wisconsin-Madison",
	"University of North Carolina at Chapel Hill",
	"University of Virginia",
	"Purdue University",
	"Ohio State University",
	"Pennsylvania State University",
	"University of Florida",
	"University of Maryland",
	"University of Minnesota",
	"Rutgers University",
	"Texas A&M University",
	"University of Oxford",
	"University of Cambridge",
	"Imperial College London",
	"University College London (UCL)",
	"London School of Economics (LSE)",
	"University of Edinburgh",
	"King's College London",
	"University of Manchester",
	"University of Warwick",
	"University of Bristol",
	"University of Glasgow",
	"University of Toronto",
	"University of British Columbia",
	"McGill University",
	"University of Alberta",
	"McMaster University",
	"University of Waterloo",
	"University of Melbourne",
	"Australian National University",
	"University of Sydney",
	"University of Queensland",
	"Monash University",
	"University of New South Wales",
	"ETH Zurich",
	"\u00c9cole Polytechnique F\u00e9d\u00e9rale de Lausanne (EPFL)",
	"Technical University of Munich",
	"Ludwig Maximilian University of Munich",
	"Heidelberg University",
	"KU Leuven",
	"University of Amsterdam",
	"Delft University of Technology",
	"Sorbonne University",
	"Sciences Po",
	"Karolinska Institute",
	"Uppsala University",
	"University of Copenhagen",
	"National University of Singapore (NUS)",
	"Nanyang Technological University",
	"Tsinghua University",
	"Peking University",
	"Fudan University",
	"Shanghai Jiao Tong University",
	"University of Tokyo",
	"Kyoto University",
	"Seoul National University",
	"KAIST",
	"Hong Kong University of Science and Technology",
	"Indian Institute of Technology (IIT) Bombay",
	"Indian Institute of Technology (IIT) Delhi",
	"Santa Monica College",
	"De Anza College",
	"Foothill College",
	"Community College of Philadelphia",
	"Miami Dade College",
	"Northern Virginia Community College",
	"Austin Community College",
}

var positions = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Lead Software Engineer",
	"Principal Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Web Developer",
	"Mobile Developer",
	"iOS Developer",
	"Android Developer",
	"React Native Developer",
	"DevOps Engineer",
	"Site Reliability Engineer (SRE)",
	"Cloud Engineer",
	"Platform Engineer",
	"Data Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"AI Research Scientist",
	"Data Analyst",
	"Business Intelligence Analyst",
	"Analytics Engineer",
	"QA Engineer",
	"Test Automation Engineer",
	"Quality Assurance Analyst",
	"Security Engineer",
	"Cybersecurity Analyst",
	"Information Security Specialist",
	"Database Administrator",
	"Database Engineer",
	"Solutions Architect",
	"Cloud Architect",
	"Technical Lead",
	"Engineering Manager",
	"Director of Engineering",
	"VP of Engineering",
	"CTO",
	"Chief Technology Officer",
	"Chief Information Officer (CIO)",
	"Product Manager",
	"Senior Product Manager",
	"Product Owner",
	"Technical Product Manager",
	"UI/UX Designer",
	"Product Designer",
	"Visual Designer",
	"Interaction Designer",
	"User Researcher",
	"UX Researcher",
	"Design Lead",
	"Creative Director",
	"Project Manager",
	"Program Manager",
	"Agile Coach",
	"Scrum Master",
	"Business Analyst",
	"Management Consultant",
	"Strategy Consultant",
	"Operations Manager",
	"Operations Director",
	"COO",
	"Chief Operating Officer",
	"General Manager",
	"Regional Manager",
	"District Manager",
	"Store Manager",
	"Marketing Manager",
	"Digital Marketing Specialist",
	"Content Marketing Manager",
	"SEO Specialist",
	"Social Media Manager",
	"Brand Manager",
	"Growth Marketing Manager",
	"Sales Representative",
	"Account Executive",
	"Sales Manager",
	"Business Development Manager",
	"Customer Success Manager",
	"Account Manager",
	"Sales Engineer",
	"Financial Analyst",
	"Senior Financial Analyst",
	"Finance Manager",
	"CFO",
	"Accountant",
	"Senior Accountant",
	"Staff Accountant",
	"Accounting Manager",
	"Auditor",
	"Tax Analyst",
	"Investment Analyst",
	"Portfolio Manager",
	"Risk Analyst",
	"Credit Analyst",
	"Treasury Analyst",
	"Human Resources Manager",
	"HR Business Partner",
	"HR Director",
	"CHRO",
	"Recruiter",
	"Technical Recruiter",
	"Talent Acquisition Specialist",
	"Compensation and Benefits Analyst",
	"Training and Development Manager",
	"Customer Service Representative",
	"Customer Support Specialist",
	"Technical Support Engineer",
	"Help Desk Technician",
	"IT Support Specialist",
	"Registered Nurse",
	"Nurse Practitioner",
	"Physician",
	"Physician Assistant",
	"Medical Assistant",
	"Healthcare Administrator",
	"Clinical Research Coordinator",
	"Teacher",
	"Professor",
	"Assistant Professor",
	"Associate Professor",
	"Academic Advisor",
	"Curriculum Developer",
	"Instructional Designer",
	"Attorney",
	"Lawyer",
	"Legal Counsel",
	"Paralegal",
	"Legal Assistant",
	"Administrative Assistant",
	"Executive Assistant",
	"Office Manager",
	"Receptionist",
	"Data Entry Clerk",
	"Content Writer",
	"Copywriter",
	"Technical Writer",
	"Editor",
	"Graphic Designer",
	"Video Editor",
	"Photographer",
	"Illustrator",
	"Research Scientist",
	"Research Associate",
	"Lab Technician",
	"Postdoctoral Researcher",
	"Consultant",
	"Freelance Consultant",
	"Independent Contractor",
	"Intern",
	"Co-op Student",
	"Research Assistant",
	"Teaching Assistant",
}

var companies = []string{
	"Google",
	"Apple",
	"Microsoft",
	"Amazon",
	"Meta (Facebook)",
	"Netflix",
	"Tesla",
	"IBM",
	"Oracle",
	"Salesforce",
	"Adobe",
	"Intel",
	"NVIDIA",
	"AMD",
	"Cisco Systems",
	"VMware",
	"Dell Technologies",
	"HP Inc.",
	"HPE",
	"SAP",
	"Workday",
	"ServiceNow",
	"Zoom Video Communications",
	"Slack",
	"Atlassian",
	"Shopify",
	"Square",
	"PayPal",
	"Stripe",
	"Coinbase",
	"Twitter",
	"LinkedIn",
	"Snap Inc.",
	"Pinterest",
	"Reddit",
	"Discord",
	"Twitch",
	"TikTok",
	"ByteDance",
	"Telegram",
	"Walmart",
	"Target",
	"Costco",
	"Home Depot",
	"Best Buy",
	"eBay",
	"Etsy",
	"Wayfair",
	"Chewy",
	"DoorDash",
	"Instacart",
	"Uber Eats",
	"Uber",
	"Lyft",
	"Waymo",
	"Cruise",
	"Bird",
	"Lime",
	"JPMorgan Chase",
	"Bank of America",
	"Wells Fargo",
	"Citigroup",
	"Goldman Sachs",
	"Morgan Stanley",
	"Charles Schwab",
	"Fidelity Investments",
	"BlackRock",
	"Visa",
	"Mastercard",
	"American Express",
	"Capital One",
	"Discover",
	"Robinhood",
	"Plaid",
	"Affirm",
	"SoFi",
	"Chime",
	"McKinsey & Company",
	"Boston Consulting Group (BCG)",
	"Bain & Company",
	"Deloitte",
	"PwC",
	"EY",
	"KPMG",
	"Accenture",
	"Capgemini",
	"Johnson & Johnson",
	"Pfizer",
	"Moderna",
	"UnitedHealth Group",
	"CVS Health",
	"Walgreens",
	"Kaiser Permanente",
	"Mayo Clinic",
	"Cleveland Clinic",
	"Teladoc Health",
	"Ford Motor Company",
	"General Motors",
	"Toyota",
	"Honda",
	"BMW",
	"Mercedes-Benz",
	"Volkswagen",
	"Rivian",
	"Lucid Motors",
	"Boeing",
	"Lockheed Martin",
	"Raytheon Technologies",
	"Northrop Grumman",
	"SpaceX",
	"Blue Origin",
	"Virgin Galactic",
	"Disney",
	"Warner Bros.",
	"NBCUniversal",
	"Paramount",
	"Sony",
	"Spotify",
	"SoundCloud",
	"Pandora",
	"Electronic Arts (EA)",
	"Activision Blizzard",
	"Epic Games",
	"Riot Games",
	"Valve",
	"Roblox",
	"Unity Technologies",
	"Nintendo",
	"Sony PlayStation",
	"Amazon Web Services (AWS)",
	"Google Cloud Platform (GCP)",
	"Microsoft Azure",
	"DigitalOcean",
	"Linode",
	"Cloudflare",
	"Akamai",
	"Fastly",
	"Palantir Technologies",
	"Snowflake",
	"Databricks",
	"MongoDB",
	"Redis Labs",
	"Confluent",
	"Elastic",
	"Splunk",
	"New Relic",
	"Datadog",
	"Airbnb",
	"SpaceX",
	"Stripe",
	"Canva",
	"Notion",
	"Figma",
	"Miro",
	"Airtable",
	"Zapier",
	"Webflow",
	"Vercel",
	"Netlify",
	"CrowdStrike",
	"Palo Alto Networks",
	"Fortinet",
	"Okta",
	"Zscaler",
	"Coursera",
	"Udacity",
	"Khan Academy",
	"Duolingo",
	"Chegg",
	"Procter & Gamble",
	"Coca-Cola",
	"PepsiCo",
	"Unilever",
	"Nestl\u00e9",
	"ExxonMobil",
	"Chevron",
	"BP",
	"Shell",
	"NextEra Energy",
	"Verizon",
	"AT&T",
	"T-Mobile",
	"Sprint",
	"Comcast",
	"CBRE",
	"Zillow",
	"Redfin",
	"Compass",
	"WeWork",
	"Starbucks",
	"McDonald's",
	"Chipotle",
	"Domino's Pizza",
	"FedEx",
	"UPS",
	"DHL",
	"C.H. Robinson",
	"Acme Corporation",
	"Global Industries",
	"Premier Solutions",
	"Summit Enterprises",
	"Apex Group",
	"Horizon Technologies",
	"Pinnacle Systems",
	"Vertex Corporation",
	"Stellar Innovations",
	"Nexus Partners",
	"Quantum Solutions",
	"Fusion Technologies",
	"Catalyst Group",
	"Vanguard Enterprises",
	"Meridian Systems",
	"Ascent Corporation",
	"Beacon Solutions",
	"Cornerstone Industries",
	"Keystone Partners",
	"Zenith Group",
}

var skills = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C++",
	"C#",
	"C",
	"Go (Golang)",
	"Rust",
	"Swift",
	"Kotlin",
	"Objective-C",
	"PHP",
	"Ruby",
	"Scala",
	"R",
	"MATLAB",
	"Perl",
	"Dart",
	"Elixir",
	"Haskell",
	"Lua",
	"Shell Scripting",
	"HTML5",
	"CSS3",
	"SASS/SCSS",
	"Less",
	"Tailwind CSS",
	"Bootstrap",
	"React",
	"Angular",
	"Vue.js",
	"Svelte",
	"Next.js",
	"Nuxt.js",
	"Gatsby",
	"jQuery",
	"Redux",
	"MobX",
	"Vuex",
	"RxJS",
	"Node.js",
	"Express.js",
	"Django",
	"Flask",
	"FastAPI",
	"Spring Boot",
	"ASP.NET",
	".NET Core",
	"Ruby on Rails",
	"Laravel",
	"Symfony",
	"Nest.js",
	"Koa.js",
	"Hapi.js",
	"SQL",
	"MySQL",
	"PostgreSQL",
	"MongoDB",
	"Redis",
	"Cassandra",
	"Oracle Database",
	"Microsoft SQL Server",
	"SQLite",
	"MariaDB",
	"DynamoDB",
	"Couchbase",
	"Neo4j",
	"Firebase Firestore",
	"Elasticsearch",
	"AWS (Amazon Web Services)",
	"Google Cloud Platform (GCP)",
	"Microsoft Azure",
	"Docker",
	"Kubernetes",
	"Jenkins",
	"GitLab CI/CD",
	"GitHub Actions",
	"CircleCI",
	"Travis CI",
	"Terraform",
	"Ansible",
	"Chef",
	"Puppet",
	"Prometheus",
	"Grafana",
	"ELK Stack",
	"New Relic",
	"Datadog",
	"React Native",
	"Flutter",
	"Xamarin",
	"Ionic",
	"SwiftUI",
	"UIKit",
	"Android Studio",
	"Xcode",
	"Jetpack Compose",
	"Machine Learning",
	"Deep Learning",
	"Natural Language Processing (NLP)",
	"Computer Vision",
	"TensorFlow",
	"PyTorch",
	"Keras",
	"scikit-learn",
	"Pandas",
	"NumPy",
	"Matplotlib",
	"Seaborn",
	"Jupyter Notebooks",
	"Apache Spark",
	"Hadoop",
	"Tableau",
	"Power BI",
	"Looker",
	"Git",
	"GitHub",
	"GitLab",
	"Bitbucket",
	"SVN",
	"Mercurial",
	"Jest",
	"Mocha",
	"Jasmine",
	"Cypress",
	"Selenium",
	"Playwright",
	"JUnit",
	"pytest",
	"RSpec",
	"TestNG",
	"Postman",
	"REST Assured",
	"Adobe Photoshop",
	"Adobe Illustrator",
	"Adobe XD",
	"Figma",
	"Sketch",
	"InVision",
	"Canva",
	"Blender",
	"Adobe After Effects",
	"Adobe Premiere Pro",
	"Agile",
	"Scrum",
	"Kanban",
	"Waterfall",
	"JIRA",
	"Trello",
	"Asana",
	"Monday.com",
	"Microsoft Project",
	"Confluence",
	"Microsoft Excel",
	"Google Sheets",
	"Microsoft PowerPoint",
	"Google Slides",
	"Data Analysis",
	"Statistical Analysis",
	"A/B Testing",
	"SEO",
	"SEM",
	"Google Analytics",
	"Google Ads",
	"Facebook Ads",
	"Email Marketing",
	"Leadership",
	"Team Collaboration",
	"Communication",
	"Problem Solving",
	"Critical Thinking",
	"Time Management",
	"Project Management",
	"Presentation Skills",
	"Conflict Resolution",
	"Negotiation",
	"Mentoring",
	"Public Speaking",
	"Penetration Testing",
	"Ethical Hacking",
	"Network Security",
	"SIEM",
	"Cryptography",
	"Vulnerability Assessment",
	"Security Auditing",
	"TCP/IP",
	"DNS",
	"HTTP/HTTPS",
	"Load Balancing",
	"CDN",
	"VPN",
	"Network Architecture",
	"Firewalls",
	"Blockchain",
	"Ethereum",
	"Solidity",
	"Smart Contracts",
	"Web3.js",
	"NFTs",
	"DeFi",
	"Cryptocurrency",
	"API Development",
	"RESTful APIs",
	"GraphQL",
	"Microservices",
	"System Design",
	"Distributed Systems",
	"Scalability",
	"Performance Optimization",
	"Debugging",
	"Code Review",
	"Technical Documentation",
	"Agile Methodologies",
	"CI/CD",
	"Test-Driven Development (TDD)",
	"Object-Oriented Programming (OOP)",
	"Functional Programming",
	"Design Patterns",
	"Data Structures",
	"Algorithms",
}

var durations = []string{
	"Less than 1 year",
	"1 year",
	"2 years",
	"3 years",
	"4 years",
	"5 years",
	"6 years",
	"7 years",
	"8 years",
	"9 years",
	"10 years",
	"11 years",
	"12 years",
	"13 years",
	"14 years",
	"15 years",
	"15+ years",
	"20+ years",
}
