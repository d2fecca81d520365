package auth

import (
	"sync"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateFunc func(identity domain.Identity) (string, error)
	VerifyFunc   func(token string) (domain.Identity, error)

	calls struct {
		Generate []struct {
			Identity domain.Identity
		}
		Verify []struct {
			Token string
		}
	}
	lockGenerate sync.RWMutex
	lockVerify   sync.RWMutex
}

func (mock *jwtManagerMock) Generate(identity domain.Identity) (string, error) {
	if mock.GenerateFunc == nil {
		panic("jwtManagerMock.GenerateFunc: method is nil but jwtManager.Generate was just called")
	}
	callInfo := struct {
		Identity domain.Identity
	}{Identity: identity}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(identity)
}

func (mock *jwtManagerMock) GenerateCalls() []struct {
	Identity domain.Identity
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *jwtManagerMock) Verify(token string) (domain.Identity, error) {
	if mock.VerifyFunc == nil {
		panic("jwtManagerMock.VerifyFunc: method is nil but jwtManager.Verify was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *jwtManagerMock) VerifyCalls() []struct{ Token string } {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
