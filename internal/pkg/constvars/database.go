package constvars

const (
	MongoCollectionStudents     = "students"
	MongoCollectionInstructors  = "instructors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionAssessments  = "assessments"
)

const (
	RedisKeyInstructorList        = "instructors:list"
	RedisKeyAppointmentLockFormat = "appointments:lock:instructor:%s"
)

const (
	MinioAssessmentObjectFormat = "assessments/%s/%s%s"
)
