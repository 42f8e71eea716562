package lib

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const (
	MsgMultilineHint = "multiline_mode_hint"
	MsgGoodbye       = "goodbye"
	MsgInterrupted   = "interrupted"
	MsgForwardFailed = "forward_failed"
)

var supportedLanguages = []language.Tag{
	language.English, // first entry is the fallback
	language.SimplifiedChinese,
	language.Japanese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var catalog = map[language.Tag]map[string]string{
	language.English: {
		MsgMultilineHint: "Multi-line mode: enter ``` or <<< on its own line to finish.",
		MsgGoodbye:       "Goodbye.",
		MsgInterrupted:   "Interrupted.",
		MsgForwardFailed: "could not forward input",
	},
	language.SimplifiedChinese: {
		MsgMultilineHint: "多行输入模式：单独输入一行 ``` 或 <<< 结束。",
		MsgGoodbye:       "再见。",
		MsgInterrupted:   "已中断。",
		MsgForwardFailed: "无法转发输入",
	},
	language.Japanese: {
		MsgMultilineHint: "複数行入力モード: ``` または <<< だけの行を入力すると終了します。",
		MsgGoodbye:       "さようなら。",
		MsgInterrupted:   "中断しました。",
		MsgForwardFailed: "入力を転送できませんでした",
	},
}

// Translator looks up display strings for one language.
type Translator struct {
	tag      language.Tag
	messages map[string]string
}

// NewTranslator picks the best supported language for the given preferences
// (BCP 47 tags, Accept-Language strings or POSIX locales such as
// "zh_CN.UTF-8"). Unrecognized or empty preferences select English.
func NewTranslator(preferred ...string) *Translator {
	var cleaned []string
	for _, p := range preferred {
		if p = normalizeLocale(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	tag := supportedLanguages[0]
	if len(cleaned) != 0 {
		_, index := language.MatchStrings(languageMatcher, cleaned...)
		tag = supportedLanguages[index]
	}
	return &Translator{
		tag:      tag,
		messages: catalog[tag],
	}
}

// Language returns the selected language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the display string for key, falling back to English and then to
// the key itself.
func (t *Translator) T(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := catalog[supportedLanguages[0]][key]; ok {
		return msg
	}
	return key
}

// LocaleFromEnv returns the user's locale preferences from the usual POSIX
// environment variables, most specific first.
func LocaleFromEnv() []string {
	var result []string
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := os.Getenv(name); val != "" {
			result = append(result, val)
		}
	}
	return result
}

// "zh_CN.UTF-8@pinyin" -> "zh-CN"; "C" and "POSIX" carry no language
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i != -1 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
