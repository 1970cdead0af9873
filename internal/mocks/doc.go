// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used:
//
//   - Store and auth collaborators embed testify's mock.Mock so tests can
//     assert exact arguments and that mutating calls were never made.
//   - Services use function fields, which keeps handler tests short.
//
// Usage:
//
//	users := new(mocks.MockUserStore)
//	users.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, store.ErrUserNotFound)
//	...
//	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
//
//	accounts := &mocks.MockAccountService{
//	    FindByIDFn: func(ctx context.Context, id int64) service.UserOutput { ... },
//	}
package mocks
