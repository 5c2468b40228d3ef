package apierrors

const (
	MsgFailListTasks      = "errorListTasks"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskTextRequired   = "taskTextRequired"
	MsgPriorityOutOfRange = "priorityOutOfRange"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskDeleted        = "taskDeleted"

	MsgUnauthorized       = "unauthorized"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailTaken         = "emailTaken"
	MsgPasswordTooShort   = "passwordTooShort"
	MsgFailRegisterUser   = "failRegisterUser"
	MsgFailLoginUser      = "failLoginUser"
	MsgUserNotFound       = "userNotFound"
)
