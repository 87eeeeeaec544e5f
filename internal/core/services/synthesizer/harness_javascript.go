package synthesizer

const jsReadlinePrelude = "const readline = require('readline');\n" +
	"const rl = readline.createInterface({input: process.stdin});\n"

func registerJavaScript(r *Registry) {
	r.Register(ShapeTwoSum, "javascript", func(userCode string) string {
		return userCode + "\n\n" + jsReadlinePrelude +
			"let lines=[]; rl.on('line',l=>lines.push(l)).on('close',()=>{\n" +
			"  const [n,target]=lines[0].split(' ').map(Number);\n" +
			"  const nums=lines[1].split(' ').map(Number);\n" +
			"  const res=twoSum(nums,target);\n" +
			"  console.log(res[0],res[1]);\n});\n"
	})
	r.Register(ShapePalindrome, "javascript", func(userCode string) string {
		return userCode + "\n\n" + jsReadlinePrelude +
			"rl.on('line',l=>{console.log(isPalindrome(Number(l)));rl.close();});\n"
	})
	r.Register(ShapeFizzBuzz, "javascript", func(userCode string) string {
		return userCode + "\n\n" + jsReadlinePrelude +
			"rl.on('line',l=>{fizzBuzz(Number(l)).forEach(s=>console.log(s));rl.close();});\n"
	})
	r.RegisterFallback("javascript", func(userCode string) string {
		return userCode + "\n\n"
	})
}
