package tools

import (
	"fmt"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// MissingCredentialsText is returned when a tool is called before credentials
// were supplied at startup.
const MissingCredentialsText = "자격 증명이 설정되지 않았습니다. 서버를 --naver-id와 --naver-password 인수로 시작해주세요."

// ErrorText converts an operation failure into the user-visible message,
// naming the error kind, the operation and the original arguments.
func ErrorText(op string, params map[string]interface{}, err error) string {
	return fmt.Sprintf("오류가 발생했습니다 [%s]\n작업: %s\n인자: %v\n원인: %v",
		mail.KindOf(err), op, params, err)
}

// UnknownOperationText is returned for tool names nobody registered.
func UnknownOperationText(name string) string {
	return fmt.Sprintf("알 수 없는 작업입니다 [%s]: %s", mail.KindUnknownOperation, name)
}
