package test

import (
	"math/rand"
	"strings"
)

const validTokens = "գործ|ողջունել|(|)|{|}|\"Բարեւ աշխարգ\"|\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.\"|'փոքր բառ'|\"\"|+|-|*|/|%|=|==|!=|<|>|<=|>=|,|;|123|321|3.14|այո|ոչ|հեչ|եթե|հպ|մինչև|տուր|և|կամ|չի|# մեկնաբանություն\n|\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
