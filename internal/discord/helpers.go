package discord

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"
)

// parseCommand splits "<prefix>name args..." into the lower-cased name and its arguments
func parseCommand(prefix, content string) (string, []string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	tokens := splitArgs(strings.TrimPrefix(content, prefix))
	if len(tokens) == 0 {
		return "", nil, false
	}
	return strings.ToLower(tokens[0]), tokens[1:], true
}

// splitArgs splits on whitespace; double-quoted runs stay one argument
func splitArgs(s string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			args = append(args, current.String())
		}
		current.Reset()
		started = false
	}
	for _, r := range s {
		switch {
		case r == '"' || r == '“' || r == '”':
			if quoted {
				quoted = false
				flush()
			} else {
				flush()
				quoted = true
				started = true
			}
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return args
}

// splitMessage cuts text into chunks of at most limit bytes, preferring line breaks
func splitMessage(text string, limit int) []string {
	if text == "" {
		return nil
	}
	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !isRuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// displayName prefers the community nickname, then the global name
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// mention formats a user mention
func mention(userID string) string {
	return "<@" + userID + ">"
}

// parseUserMention accepts <@id>, <@!id> or a bare id
func parseUserMention(arg string) (string, bool) {
	id := arg
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimPrefix(strings.TrimSuffix(id[2:], ">"), "!")
		if strings.HasPrefix(id, "&") {
			return "", false
		}
	}
	return id, isSnowflake(id)
}

// parseRoleMention accepts <@&id> or a bare id
func parseRoleMention(arg string) (string, bool) {
	id := arg
	if strings.HasPrefix(id, "<@&") && strings.HasSuffix(id, ">") {
		id = id[3 : len(id)-1]
	}
	return id, isSnowflake(id)
}

func isSnowflake(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseAmount parses a whole number of crowns
func parseAmount(arg string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	return n, err == nil
}

// splitTrailingQuantity reads "name words [n]"; quantity defaults to 1
func splitTrailingQuantity(args []string) (string, int, bool) {
	if len(args) == 0 {
		return "", 0, false
	}
	quantity := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			quantity = n
			args = args[:len(args)-1]
		}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	return name, quantity, name != ""
}
