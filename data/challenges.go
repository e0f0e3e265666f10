package data

import "github.com/kali-linux-uz/academy_api/model"

// Challenges is the daily-challenge pool. One entry is selected per day,
// deterministically from the date, skipping already-used IDs until the pool
// is exhausted.
var Challenges = []model.Challenge{
	{ID: "daily-001", Title: "File Listing", Description: "List all files in the current directory, including hidden ones.", Difficulty: "Easy", XP: 30, Category: "System", Command: "ls -la"},
	{ID: "daily-002", Title: "Print Working Directory", Description: "Display the current working directory path.", Difficulty: "Easy", XP: 20, Category: "System", Command: "pwd"},
	{ID: "daily-003", Title: "Create Directory", Description: "Create a new directory named \"secret_lab\".", Difficulty: "Easy", XP: 25, Category: "System", Command: "mkdir secret_lab"},
	{ID: "daily-004", Title: "Check IP Address", Description: "Display the network interfaces and IP addresses.", Difficulty: "Easy", XP: 30, Category: "Network", Command: "ip a"},
	{ID: "daily-005", Title: "Network Statistics", Description: "Show all listening ports.", Difficulty: "Easy", XP: 35, Category: "Network", Command: "netstat -tuln"},
	{ID: "daily-006", Title: "Disk Usage", Description: "Check disk usage in human readable format.", Difficulty: "Easy", XP: 25, Category: "System", Command: "df -h"},
	{ID: "daily-007", Title: "Process List", Description: "Show a snapshot of current processes.", Difficulty: "Easy", XP: 30, Category: "System", Command: "ps aux"},
	{ID: "daily-008", Title: "Who Am I", Description: "Display the current user.", Difficulty: "Easy", XP: 20, Category: "System", Command: "whoami"},
	{ID: "daily-009", Title: "File Content", Description: "Read the content of \"notes.txt\".", Difficulty: "Easy", XP: 25, Category: "System", Command: "cat notes.txt"},
	{ID: "daily-010", Title: "Copy File", Description: "Copy \"source.txt\" to \"destination.txt\".", Difficulty: "Easy", XP: 30, Category: "System", Command: "cp source.txt destination.txt"},
	{ID: "daily-011", Title: "Move File", Description: "Rename \"old.txt\" to \"new.txt\".", Difficulty: "Easy", XP: 30, Category: "System", Command: "mv old.txt new.txt"},
	{ID: "daily-012", Title: "Delete File", Description: "Remove the file \"junk.tmp\".", Difficulty: "Easy", XP: 25, Category: "System", Command: "rm junk.tmp"},
	{ID: "daily-013", Title: "Create Empty File", Description: "Create an empty file named \"touchfile\".", Difficulty: "Easy", XP: 20, Category: "System", Command: "touch touchfile"},
	{ID: "daily-014", Title: "System Info", Description: "Print kernel name and version.", Difficulty: "Easy", XP: 25, Category: "System", Command: "uname -a"},
	{ID: "daily-015", Title: "Echo Text", Description: "Print \"Hello Kali\" to the terminal.", Difficulty: "Easy", XP: 20, Category: "Scripting", Command: "echo \"Hello Kali\""},
	{ID: "daily-016", Title: "Ping Host", Description: "Send ICMP echo requests to google.com.", Difficulty: "Easy", XP: 30, Category: "Network", Command: "ping google.com"},
	{ID: "daily-017", Title: "DNS Lookup", Description: "Query DNS records for example.com.", Difficulty: "Easy", XP: 35, Category: "Network", Command: "nslookup example.com", Hint: "nslookup is the classic resolver tool."},
	{ID: "daily-018", Title: "Memory Usage", Description: "Display memory usage in megabytes.", Difficulty: "Easy", XP: 25, Category: "System", Command: "free -m"},
	{ID: "daily-019", Title: "Uptime", Description: "Check how long the system has been running.", Difficulty: "Easy", XP: 25, Category: "System", Command: "uptime"},
	{ID: "daily-020", Title: "Word Count", Description: "Count the lines, words, and bytes in \"file.txt\".", Difficulty: "Easy", XP: 30, Category: "System", Command: "wc file.txt"},
	{ID: "daily-051", Title: "Grep Search", Description: "Search for \"error\" in \"syslog\" case-insensitively.", Difficulty: "Medium", XP: 50, Category: "System", Command: "grep -i \"error\" syslog"},
	{ID: "daily-052", Title: "Find Permissions", Description: "Find all files with 777 permissions.", Difficulty: "Medium", XP: 60, Category: "System", Command: "find / -perm 777"},
	{ID: "daily-053", Title: "Change Owner", Description: "Change owner of \"file.txt\" to \"root\".", Difficulty: "Medium", XP: 55, Category: "System", Command: "chown root file.txt"},
	{ID: "daily-054", Title: "Nmap Quick Scan", Description: "Perform a fast scan on localhost.", Difficulty: "Medium", XP: 65, Category: "Network", Command: "nmap -F localhost"},
	{ID: "daily-055", Title: "Tar Archive", Description: "Create a compressed tarball \"backup.tar.gz\" of the \"data\" folder.", Difficulty: "Medium", XP: 60, Category: "System", Command: "tar -czvf backup.tar.gz data"},
	{ID: "daily-056", Title: "SSH Keygen", Description: "Generate a new SSH key pair.", Difficulty: "Medium", XP: 55, Category: "Security", Command: "ssh-keygen"},
	{ID: "daily-057", Title: "Hash Calculation", Description: "Calculate the MD5 hash of \"password.txt\".", Difficulty: "Medium", XP: 50, Category: "Security", Command: "md5sum password.txt"},
	{ID: "daily-058", Title: "Netcat Listen", Description: "Start a netcat listener on port 4444.", Difficulty: "Medium", XP: 70, Category: "Network", Command: "nc -lvp 4444", Hint: "listen, verbose, port."},
	{ID: "daily-059", Title: "Dig Trace", Description: "Perform a DNS trace for google.com.", Difficulty: "Medium", XP: 60, Category: "Network", Command: "dig +trace google.com"},
	{ID: "daily-060", Title: "Systemd Status", Description: "Check the status of the ssh service.", Difficulty: "Medium", XP: 50, Category: "System", Command: "systemctl status ssh"},
	{ID: "daily-101", Title: "Hydra Bruteforce", Description: "Bruteforce SSH on 10.0.0.5 with a username list and rockyou.", Difficulty: "Hard", XP: 90, Category: "Security", Command: "hydra -L users.txt -P rockyou.txt ssh://10.0.0.5"},
	{ID: "daily-102", Title: "Packet Capture", Description: "Capture traffic on eth0 and write it to capture.pcap.", Difficulty: "Hard", XP: 85, Category: "Network", Command: "tcpdump -i eth0 -w capture.pcap"},
	{ID: "daily-103", Title: "Reverse Shell Listener", Description: "Catch a reverse shell on port 9001 with netcat.", Difficulty: "Hard", XP: 95, Category: "Network", Command: "nc -lvnp 9001"},
	{ID: "daily-104", Title: "John the Ripper", Description: "Crack hashes.txt using the default wordlist.", Difficulty: "Hard", XP: 90, Category: "Security", Command: "john hashes.txt"},
	{ID: "daily-105", Title: "SQLMap Probe", Description: "Test the \"id\" parameter of a URL for SQL injection.", Difficulty: "Expert", XP: 120, Category: "Web", Command: "sqlmap -u http://target/item?id=1", Hint: "sqlmap takes the full URL with -u."},
}
