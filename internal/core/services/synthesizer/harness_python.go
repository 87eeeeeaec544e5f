package synthesizer

func registerPython(r *Registry) {
	r.Register(ShapeTwoSum, "python", func(userCode string) string {
		return userCode + "\n\n" +
			"if __name__ == '__main__':\n" +
			"    p1 = input().split()\n" +
			"    n, target = int(p1[0]), int(p1[1])\n" +
			"    nums = list(map(int, input().split()))\n" +
			"    result = two_sum(nums, target)\n" +
			"    print(result[0], result[1])\n"
	})
	r.Register(ShapePalindrome, "python", func(userCode string) string {
		return userCode + "\n\n" +
			"if __name__ == '__main__':\n" +
			"    x = int(input())\n" +
			"    print('true' if is_palindrome(x) else 'false')\n"
	})
	r.Register(ShapeFizzBuzz, "python", func(userCode string) string {
		return userCode + "\n\n" +
			"if __name__ == '__main__':\n" +
			"    n = int(input())\n" +
			"    for s in fizz_buzz(n): print(s)\n"
	})
	// no entrypoint is appended for unknown shapes; the fragment runs as-is
	r.RegisterFallback("python", func(userCode string) string {
		return userCode + "\n\n"
	})
}
