package data

import "github.com/kali-linux-uz/academy_api/model"

// Roadmaps is the master learning-track list. Module badge IDs tie module
// mastery to the roadmap badges in Badges.
var Roadmaps = []model.Roadmap{
	{
		ID:          "linux-fundamentals",
		Title:       "Linux Fundamentals",
		Description: "Master the core concepts of Linux, the file system, and essential commands.",
		Modules: []model.Module{
			{
				ID:          "mod-lin-1",
				RoadmapID:   "linux-fundamentals",
				Title:       "Introduction to Shell",
				Description: "The shell, navigation and file manipulation basics.",
				BadgeID:     "linux-scholar",
				Lessons: []model.Lesson{
					{
						ID:       "l1",
						ModuleID: "mod-lin-1",
						Title:    "What is Shell?",
						Theory:   "# The Shell\n\nThe shell is a command interpreter sitting between you and the kernel. Kali ships with Zsh as the default interactive shell.",
						PracticeTasks: []string{
							"Open a terminal emulator",
							"Identify your current shell with echo $SHELL",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "l1-t1", Description: "Print the name of the current user.", Command: "whoami"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "l1-q1", Question: "What does the shell do?", Options: []string{"Renders web pages", "Interprets commands", "Manages hardware directly", "Compiles programs"}, CorrectAnswer: 1},
						},
						XP: 50,
					},
					{
						ID:       "l2",
						ModuleID: "mod-lin-1",
						Title:    "Basic Navigation (ls, cd, pwd)",
						Theory:   "# Moving Around\n\n`pwd` prints the working directory, `ls` lists contents, `cd` changes directory.",
						PracticeTasks: []string{
							"List the contents of your home directory",
							"Navigate to /tmp and back",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "l2-t1", Description: "Print the current working directory.", Command: "pwd"},
							{ID: "l2-t2", Description: "List all files including hidden ones.", Command: "ls -la"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "l2-q1", Question: "Which command lists hidden files?", Options: []string{"ls", "ls -la", "dir", "show -all"}, CorrectAnswer: 1},
						},
						XP: 100,
					},
					{
						ID:       "l3",
						ModuleID: "mod-lin-1",
						Title:    "File Manipulation (touch, mkdir)",
						Theory:   "# Creating Files and Directories\n\n`touch` creates empty files, `mkdir` creates directories, `rm` removes.",
						PracticeTasks: []string{
							"Create a working directory for your labs",
							"Create and delete a scratch file",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "l3-t1", Description: "Create a directory named secret_lab.", Command: "mkdir secret_lab"},
							{ID: "l3-t2", Description: "Create an empty file named notes.txt.", Command: "touch notes.txt"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "l3-q1", Question: "Which command creates a directory?", Options: []string{"touch", "mkdir", "mkfile", "newdir"}, CorrectAnswer: 1},
						},
						XP: 100,
					},
				},
			},
			{
				ID:          "mod-lin-2",
				RoadmapID:   "linux-fundamentals",
				Title:       "Permissions & Security",
				Description: "File permissions, ownership and privilege escalation basics.",
				Lessons: []model.Lesson{
					{
						ID:       "l4",
						ModuleID: "mod-lin-2",
						Title:    "Understanding Permissions (chmod)",
						Theory:   "# Permissions\n\nEvery file carries read/write/execute bits for owner, group and others. `chmod` changes them.",
						PracticeTasks: []string{
							"Inspect permissions with ls -l",
							"Make a script executable",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "l4-t1", Description: "Make script.sh executable for everyone.", Command: "chmod 755 script.sh"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "l4-q1", Question: "What does 755 grant to others?", Options: []string{"Read and execute", "Write only", "Full control", "Nothing"}, CorrectAnswer: 0},
						},
						XP: 150,
					},
					{
						ID:       "l5",
						ModuleID: "mod-lin-2",
						Title:    "User Management (sudo, useradd)",
						Theory:   "# Users and Privileges\n\n`sudo` runs a command as another user, usually root. `useradd` creates accounts.",
						PracticeTasks: []string{
							"Check your sudo privileges",
							"Review /etc/passwd entries",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "l5-t1", Description: "Print user and group identities for root.", Command: "id root"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "l5-q1", Question: "Which file lists local accounts?", Options: []string{"/etc/shadow", "/etc/passwd", "/etc/group", "/etc/users"}, CorrectAnswer: 1},
						},
						XP: 150,
					},
				},
			},
		},
	},
	{
		ID:          "network-analysis",
		Title:       "Network Analysis",
		Description: "Learn how to analyze network traffic and understand protocols.",
		Modules: []model.Module{
			{
				ID:          "mod-net-1",
				RoadmapID:   "network-analysis",
				Title:       "Networking Basics",
				Description: "Addressing, ports and reachability checks.",
				BadgeID:     "network-ninja",
				Lessons: []model.Lesson{
					{
						ID:       "nl1",
						ModuleID: "mod-net-1",
						Title:    "IP Addresses & Ports",
						Theory:   "# Addressing\n\nAn IPv4 address identifies a host; a port identifies a service on that host.",
						PracticeTasks: []string{
							"Find your interface addresses",
							"Identify the port HTTPS uses",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "nl1-t1", Description: "Display network interfaces and addresses.", Command: "ip a"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "nl1-q1", Question: "Which port does HTTPS use by default?", Options: []string{"80", "21", "443", "8080"}, CorrectAnswer: 2},
						},
						XP: 100,
					},
					{
						ID:       "nl2",
						ModuleID: "mod-net-1",
						Title:    "Using Ping & Traceroute",
						Theory:   "# Reachability\n\n`ping` sends ICMP echo requests; `traceroute` reveals the path packets take.",
						PracticeTasks: []string{
							"Ping a public resolver",
							"Trace the route to a website",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "nl2-t1", Description: "Send ICMP echo requests to 8.8.8.8.", Command: "ping 8.8.8.8"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "nl2-q1", Question: "Which protocol does ping use?", Options: []string{"TCP", "UDP", "ICMP", "ARP"}, CorrectAnswer: 2},
						},
						XP: 100,
					},
				},
			},
			{
				ID:          "mod-net-2",
				RoadmapID:   "network-analysis",
				Title:       "Scanning with Nmap",
				Description: "Host discovery and port scanning fundamentals.",
				Lessons: []model.Lesson{
					{
						ID:       "nl3",
						ModuleID: "mod-net-2",
						Title:    "Nmap Basics",
						Theory:   "# Nmap\n\nNmap discovers hosts and services. Only ever scan systems you are authorized to test.",
						PracticeTasks: []string{
							"Read the nmap man page introduction",
							"Understand the difference between -F and a full scan",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "nl3-t1", Description: "Perform a fast scan of localhost.", Command: "nmap -F localhost"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "nl3-q1", Question: "What does the -F flag do?", Options: []string{"Full scan", "Fast scan of fewer ports", "Fragment packets", "Force scan"}, CorrectAnswer: 1},
						},
						XP: 200,
					},
				},
			},
		},
	},
	{
		ID:          "web-security",
		Title:       "Web Application Security",
		Description: "Understand common web vulnerabilities and how to probe for them safely.",
		Modules: []model.Module{
			{
				ID:          "mod-web-1",
				RoadmapID:   "web-security",
				Title:       "HTTP & Recon",
				Description: "How the web talks and how to enumerate it.",
				BadgeID:     "web-warrior",
				Lessons: []model.Lesson{
					{
						ID:       "wl1",
						ModuleID: "mod-web-1",
						Title:    "HTTP Fundamentals",
						Theory:   "# HTTP\n\nRequests carry a method, path and headers; responses carry a status code and body.",
						PracticeTasks: []string{
							"Fetch a page and inspect the headers",
							"Identify the status code families",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "wl1-t1", Description: "Fetch only the response headers of example.com.", Command: "curl -I example.com"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "wl1-q1", Question: "Which status class signals a client error?", Options: []string{"2xx", "3xx", "4xx", "5xx"}, CorrectAnswer: 2},
						},
						XP: 100,
					},
					{
						ID:       "wl2",
						ModuleID: "mod-web-1",
						Title:    "Directory Enumeration",
						Theory:   "# Enumeration\n\nWordlist-driven enumeration reveals unlinked paths. Respect scope and authorization.",
						PracticeTasks: []string{
							"Locate the wordlists shipped with Kali",
							"Review a gobuster report",
						},
						TerminalTasks: []model.TerminalTask{
							{ID: "wl2-t1", Description: "List the wordlists directory.", Command: "ls /usr/share/wordlists"},
						},
						Quiz: []model.QuizQuestion{
							{ID: "wl2-q1", Question: "Directory enumeration relies on what input?", Options: []string{"A wordlist", "A packet capture", "A kernel module", "A database dump"}, CorrectAnswer: 0},
						},
						XP: 150,
					},
				},
			},
		},
	},
}
