package catalog

import "chonapi/internal/model"

// menus holds the four identity-specific questionnaires. The first
// section of each menu is untitled background questions.
var menus = []model.Menu{
	{
		Identity: model.IdentityMother,
		Sections: []model.Section{
			{
				QuestionIDs: []int{2, 3, 4, 5, 52, 53, 54, 55, 56, 57, 58},
			},
			{
				Title:       txt("I. About Work-Life Balance", "I. 关于工作与生活的平衡"),
				TitleLife:   txt("I. About Life Balance", "I. 关于生活平衡"),
				QuestionIDs: []int{59, 60, 61, 62, 63, 68, 64, 65, 66, 69, 70, 25},
			},
			{
				Title:       txt("II. About Us, CHON", "II. 关于我们，CHON"),
				QuestionIDs: []int{26, 27, 71, 29, 28, 31, 30, 32, 72, 33, 35, 38, 39, 40},
			},
			{
				Title:       txt("III. About Motherhood", "III. 关于母亲"),
				QuestionIDs: []int{41, 42, 43, 44, 73, 74, 75, 76, 77, 78, 79, 80, 51},
			},
		},
	},
	{
		Identity: model.IdentityCorporate,
		Sections: []model.Section{
			{
				QuestionIDs: []int{6, 1, 2, 3, 5, 7, 8, 9, 10, 11},
			},
			{
				Title:       txt("I. About Your Leadership", "I. 关于您的领导力"),
				QuestionIDs: []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25},
			},
			{
				Title:       txt("II. About CHON", "II. 关于CHON"),
				QuestionIDs: []int{26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40},
			},
			{
				Title:       txt("III. About Motherhood", "III. 关于母亲"),
				QuestionIDs: []int{41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51},
			},
		},
	},
	{
		Identity: model.IdentityBoth,
		Sections: []model.Section{
			{
				QuestionIDs: []int{6, 2, 3, 5, 52, 53, 54, 55, 56, 57, 58, 7, 8, 9, 10, 11},
			},
			{
				Title:       txt("I. About Your Leadership", "I. 关于您的领导力"),
				QuestionIDs: []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25},
			},
			{
				Title:       txt("II. About Work-Life Balance", "II. 关于工作与生活的平衡"),
				QuestionIDs: []int{59, 60, 61, 62, 63, 68, 64, 65, 66, 69, 70},
			},
			{
				Title:       txt("III. About Us, CHON", "III. 关于我们，CHON"),
				QuestionIDs: []int{26, 27, 71, 29, 28, 31, 30, 32, 72, 33, 35, 38, 39, 40},
			},
			{
				Title:       txt("IV. About Motherhood", "IV. 关于母亲"),
				QuestionIDs: []int{41, 42, 43, 44, 73, 74, 75, 76, 77, 78, 79, 80, 51},
			},
		},
	},
	{
		Identity: model.IdentityOther,
		Sections: []model.Section{
			{
				QuestionIDs: []int{1, 2, 3, 4, 5},
			},
			{
				Title:       txt("I. About Professional Work", "I. 关于职业工作"),
				TitleLife:   txt("I. About Teamwork", "I. 关于团队工作"),
				QuestionIDs: []int{81, 82, 20, 83, 84, 85, 86, 87, 88, 89, 24},
			},
			{
				Title:       txt("II. About Us, CHON", "II. 关于我们，CHON"),
				QuestionIDs: []int{26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40},
			},
			{
				Title:       txt("III. About Motherhood", "III. 关于母亲"),
				QuestionIDs: []int{41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51},
			},
		},
	},
}
