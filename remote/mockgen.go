//go:build gomock || generate

package remote

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package remote -self_package github.com/mengelbart/triemap/remote -destination mock_stream_test.go github.com/mengelbart/triemap/remote Stream"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package remote -self_package github.com/mengelbart/triemap/remote -destination mock_connection_test.go github.com/mengelbart/triemap/remote Connection"
