package data

import "github.com/kali-linux-uz/academy_api/model"

// Commands is the reference library served read-only by the catalog.
var Commands = []model.Command{
	// File operations
	{ID: "ls", Name: "ls", Description: "List directory contents.", Category: "file", Syntax: "ls [options] [path]", Example: "ls -la /home"},
	{ID: "cd", Name: "cd", Description: "Change the shell working directory.", Category: "file", Syntax: "cd [dir]", Example: "cd /var/www"},
	{ID: "pwd", Name: "pwd", Description: "Print name of current/working directory.", Category: "file", Syntax: "pwd", Example: "pwd"},
	{ID: "mkdir", Name: "mkdir", Description: "Make directories.", Category: "file", Syntax: "mkdir [options] directory", Example: "mkdir -p project/src"},
	{ID: "rm", Name: "rm", Description: "Remove files or directories.", Category: "file", Syntax: "rm [options] file", Example: "rm -rf temp_folder", SafeUsage: "Be extremely careful with the -rf option."},
	{ID: "cp", Name: "cp", Description: "Copy files and directories.", Category: "file", Syntax: "cp [options] source dest", Example: "cp file.txt backup.txt"},
	{ID: "mv", Name: "mv", Description: "Move (rename) files.", Category: "file", Syntax: "mv [options] source dest", Example: "mv old.txt new.txt"},
	{ID: "touch", Name: "touch", Description: "Change file timestamps (or create empty file).", Category: "file", Syntax: "touch file", Example: "touch newfile.txt"},
	{ID: "cat", Name: "cat", Description: "Concatenate files and print on the standard output.", Category: "file", Syntax: "cat [file]", Example: "cat /etc/passwd"},
	{ID: "head", Name: "head", Description: "Output the first part of files.", Category: "file", Syntax: "head [options] file", Example: "head -n 5 file.txt"},
	{ID: "tail", Name: "tail", Description: "Output the last part of files.", Category: "file", Syntax: "tail [options] file", Example: "tail -f /var/log/syslog"},
	{ID: "grep", Name: "grep", Description: "Print lines that match patterns.", Category: "file", Syntax: "grep [pattern] [file]", Example: "grep \"error\" server.log"},
	{ID: "find", Name: "find", Description: "Search for files in a directory hierarchy.", Category: "file", Syntax: "find [path] [expression]", Example: "find . -name \"*.conf\""},
	{ID: "tar", Name: "tar", Description: "An archiving utility.", Category: "file", Syntax: "tar [options] [archive] [files]", Example: "tar -czvf backup.tar.gz /home/user"},
	{ID: "chmod", Name: "chmod", Description: "Change file mode bits.", Category: "file", Syntax: "chmod [mode] file", Example: "chmod 755 script.sh"},
	{ID: "chown", Name: "chown", Description: "Change file owner and group.", Category: "file", Syntax: "chown [owner]:[group] file", Example: "chown root:root /etc/shadow"},

	// System
	{ID: "uname", Name: "uname", Description: "Print system information.", Category: "system", Syntax: "uname [options]", Example: "uname -a"},
	{ID: "hostname", Name: "hostname", Description: "Show or set the system's host name.", Category: "system", Syntax: "hostname", Example: "hostname"},
	{ID: "uptime", Name: "uptime", Description: "Tell how long the system has been running.", Category: "system", Syntax: "uptime", Example: "uptime"},
	{ID: "whoami", Name: "whoami", Description: "Print effective userid.", Category: "system", Syntax: "whoami", Example: "whoami"},
	{ID: "id", Name: "id", Description: "Print user and group identities.", Category: "system", Syntax: "id [user]", Example: "id root"},
	{ID: "date", Name: "date", Description: "Print or set the system date and time.", Category: "system", Syntax: "date", Example: "date"},

	// Process
	{ID: "ps", Name: "ps", Description: "Report a snapshot of the current processes.", Category: "process", Syntax: "ps [options]", Example: "ps aux"},
	{ID: "top", Name: "top", Description: "Display Linux processes.", Category: "process", Syntax: "top", Example: "top"},
	{ID: "kill", Name: "kill", Description: "Send a signal to a process.", Category: "process", Syntax: "kill [pid]", Example: "kill 9822"},
	{ID: "systemctl", Name: "systemctl", Description: "Control the systemd system and service manager.", Category: "process", Syntax: "systemctl [command] [unit]", Example: "systemctl status ssh"},

	// Network
	{ID: "ip", Name: "ip", Description: "Show / manipulate routing, network devices, interfaces and tunnels.", Category: "network", Syntax: "ip [options] object", Example: "ip addr show"},
	{ID: "ping", Name: "ping", Description: "Send ICMP ECHO_REQUEST to network hosts.", Category: "network", Syntax: "ping [host]", Example: "ping 8.8.8.8"},
	{ID: "netstat", Name: "netstat", Description: "Print network connections and listening ports.", Category: "network", Syntax: "netstat [options]", Example: "netstat -tuln"},
	{ID: "curl", Name: "curl", Description: "Transfer a URL.", Category: "network", Syntax: "curl [options] url", Example: "curl -I example.com"},
	{ID: "dig", Name: "dig", Description: "DNS lookup utility.", Category: "network", Syntax: "dig [options] name", Example: "dig +trace google.com"},
	{ID: "nc", Name: "nc", Description: "Arbitrary TCP and UDP connections and listens.", Category: "network", Syntax: "nc [options] [host] [port]", Example: "nc -lvp 4444"},
	{ID: "tcpdump", Name: "tcpdump", Description: "Dump traffic on a network.", Category: "network", Syntax: "tcpdump [options]", Example: "tcpdump -i eth0", SafeUsage: "Capture only traffic you are authorized to inspect."},

	// Security
	{ID: "nmap", Name: "nmap", Description: "Network exploration tool and security / port scanner.", Category: "security", Syntax: "nmap [options] target", Example: "nmap -F localhost", SafeUsage: "Only scan hosts you are authorized to test."},
	{ID: "hydra", Name: "hydra", Description: "Parallelized login cracker.", Category: "security", Syntax: "hydra [options] target", Example: "hydra -L users.txt -P rockyou.txt ssh://10.0.0.5", SafeUsage: "Authorized engagements only."},
	{ID: "john", Name: "john", Description: "John the Ripper password cracker.", Category: "security", Syntax: "john [options] hashfile", Example: "john hashes.txt"},
	{ID: "ssh-keygen", Name: "ssh-keygen", Description: "OpenSSH authentication key utility.", Category: "security", Syntax: "ssh-keygen [options]", Example: "ssh-keygen -t ed25519"},
	{ID: "md5sum", Name: "md5sum", Description: "Compute and check MD5 message digests.", Category: "security", Syntax: "md5sum [file]", Example: "md5sum password.txt"},
}
