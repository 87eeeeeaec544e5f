package synthesizer

// cppProgram wraps the user's functions with a main reading stdin per the
// problem shape
func cppProgram(userCode, mainBody string) string {
	return "#include <bits/stdc++.h>\nusing namespace std;\n\n" +
		userCode + "\n\n" +
		"int main(){\n    ios::sync_with_stdio(false); cin.tie(nullptr);\n" +
		mainBody +
		"    return 0;\n}\n"
}

func registerCpp(r *Registry) {
	r.Register(ShapeTwoSum, "cpp", func(userCode string) string {
		return cppProgram(userCode,
			"    int n,target; cin>>n>>target; vector<int> nums(n);\n"+
				"    for(int&x:nums)cin>>x;\n"+
				"    vector<int> res=twoSum(nums,target);\n"+
				"    cout<<res[0]<<\" \"<<res[1]<<endl;\n")
	})
	r.Register(ShapePalindrome, "cpp", func(userCode string) string {
		return cppProgram(userCode,
			"    int x; cin>>x;\n"+
				"    cout<<(isPalindrome(x)?\"true\":\"false\")<<endl;\n")
	})
	r.Register(ShapeFizzBuzz, "cpp", func(userCode string) string {
		return cppProgram(userCode,
			"    int n; cin>>n;\n"+
				"    for(auto &s:fizzBuzz(n))cout<<s<<endl;\n")
	})
	r.RegisterFallback("cpp", func(userCode string) string {
		return cppProgram(userCode, "")
	})
}
