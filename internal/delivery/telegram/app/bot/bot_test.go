package bot

import "testing"

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCmd  string
		wantArgs string
	}{
		{name: "bare command", text: "/help", wantCmd: "/help", wantArgs: ""},
		{name: "command with args", text: "/revenue_list 3", wantCmd: "/revenue_list", wantArgs: "3"},
		{name: "multi-word args", text: "/revenue_add 100 € fiverr Acme Landing page", wantCmd: "/revenue_add", wantArgs: "100 € fiverr Acme Landing page"},
		{name: "bot mention stripped", text: "/revenue_list@revenue_bot 3", wantCmd: "/revenue_list", wantArgs: "3"},
		{name: "trailing spaces trimmed", text: "/revenue_del  7 ", wantCmd: "/revenue_del", wantArgs: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := splitCommand(tt.text)
			if cmd != tt.wantCmd {
				t.Errorf("command = %q, want %q", cmd, tt.wantCmd)
			}
			if args != tt.wantArgs {
				t.Errorf("args = %q, want %q", args, tt.wantArgs)
			}
		})
	}
}
