package synthesizer

const javaClassName = "Solution"

// javaProgram wraps the user's method(s) in the Solution class with a
// main that parses stdin per the problem shape
func javaProgram(userCode, mainBody string) string {
	return "import java.io.*;\nimport java.util.*;\n\n" +
		"public class " + javaClassName + " {\n" +
		userCode + "\n\n" +
		"    public static void main(String[] args) throws Exception {\n" +
		"        BufferedReader br = new BufferedReader(new InputStreamReader(System.in));\n" +
		mainBody +
		"    }\n" +
		"}\n"
}

func registerJava(r *Registry) {
	r.Register(ShapeTwoSum, "java", func(userCode string) string {
		return javaProgram(userCode,
			"        String[] p1 = br.readLine().trim().split(\"\\\\s+\");\n"+
				"        int n = Integer.parseInt(p1[0]); int target = Integer.parseInt(p1[1]);\n"+
				"        String[] arrS = br.readLine().trim().split(\"\\\\s+\"); int[] nums = new int[n];\n"+
				"        for(int i=0;i<n;i++) nums[i]=Integer.parseInt(arrS[i]);\n"+
				"        int[] res = new "+javaClassName+"().twoSum(nums, target);\n"+
				"        System.out.println(res[0] + \" \" + res[1]);\n")
	})
	r.Register(ShapePalindrome, "java", func(userCode string) string {
		return javaProgram(userCode,
			"        String line = br.readLine().trim(); int x = Integer.parseInt(line);\n"+
				"        boolean ans = new "+javaClassName+"().isPalindrome(x);\n"+
				"        System.out.println(ans);\n")
	})
	r.Register(ShapeFizzBuzz, "java", func(userCode string) string {
		return javaProgram(userCode,
			"        int n = Integer.parseInt(br.readLine().trim());\n"+
				"        List<String> out = new "+javaClassName+"().fizzBuzz(n);\n"+
				"        for(String s: out) System.out.println(s);\n")
	})
	// degenerate harness: echo the first input line
	r.RegisterFallback("java", func(userCode string) string {
		return javaProgram(userCode, "        System.out.print(br.readLine());\n")
	})
}
