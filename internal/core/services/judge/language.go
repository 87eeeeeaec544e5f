package judge

// LanguageSpec describes how one language's submissions are materialized
// and executed inside the sandbox. CompileCmd is empty for interpreted
// languages.
type LanguageSpec struct {
	FileName   string
	CompileCmd string
	RunCmd     string
}

var languageSpecs = map[string]LanguageSpec{
	"java": {
		FileName:   "Solution.java",
		CompileCmd: "javac Solution.java",
		RunCmd:     "java Solution",
	},
	"python": {
		FileName: "solution.py",
		RunCmd:   "python3 solution.py",
	},
	"cpp": {
		FileName:   "solution.cpp",
		CompileCmd: "g++ -o solution solution.cpp",
		RunCmd:     "./solution",
	},
	"javascript": {
		FileName: "solution.js",
		RunCmd:   "node solution.js",
	},
}

// IsSupportedLanguage reports whether the (already lower-cased) language
// tag is on the allow-list
func IsSupportedLanguage(language string) bool {
	_, ok := languageSpecs[language]
	return ok
}

// SupportedLanguages returns the language allow-list
func SupportedLanguages() []string {
	return []string{"java", "python", "cpp", "javascript"}
}
