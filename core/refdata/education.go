package refdata

// Courses offered for admission, as printed on the form.
var Courses = []string{
	"Electrician (2 Year Diploma)",
	"HSI (Health & Sanitary Inspector 1 Year Diploma)",
	"DHP (2 Year Diploma)",
}

// Categories recognised for the category field.
var Categories = []string{"General", "OBC", "SC", "ST", "MIN"}

// Sexes accepted by the sex field.
var Sexes = []string{"Male", "Female"}

// ExamLevels accepted for an academic record.
var ExamLevels = []string{"High School", "Intermediate"}

// Boards lists the education boards/universities selectable for an academic
// record.
var Boards = []string{
	"CBSE (Central Board of Secondary Education)",
	"CISCE (Council for the Indian School Certificate Examinations)",
	"NIOS (National Institute of Open Schooling)",
	"UP Board (Board of High School and Intermediate Education Uttar Pradesh)",
	"Bihar School Examination Board",
	"Board of School Education Haryana",
	"Board of Secondary Education Madhya Pradesh",
	"Board of Secondary Education Rajasthan",
	"Chhattisgarh Board of Secondary Education",
	"Council of Higher Secondary Education Odisha",
	"Gujarat Secondary and Higher Secondary Education Board",
	"Himachal Pradesh Board of School Education",
	"Jharkhand Academic Council",
	"Karnataka Secondary Education Examination Board",
	"Kerala Board of Public Examinations",
	"Maharashtra State Board of Secondary and Higher Secondary Education",
	"Punjab School Education Board",
	"Tamil Nadu State Board of School Examinations",
	"Telangana State Board of Intermediate Education",
	"Uttarakhand Board of School Education",
	"West Bengal Board of Secondary Education",
	"Other",
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

func ValidCourse(course string) bool     { return contains(Courses, course) }
func ValidCategory(category string) bool { return contains(Categories, category) }
func ValidSex(sex string) bool           { return contains(Sexes, sex) }
func ValidExamLevel(exam string) bool    { return contains(ExamLevels, exam) }
func ValidBoard(board string) bool       { return contains(Boards, board) }
