package userservice

import (
	"context"
	"net/http"
	"time"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/encoding"
	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/runtime"
	"github.com/kroma-labs/wire-go/urlbuilder"
	"github.com/kroma-labs/wire-go/wire"
)

// Endpoints are built once, as package-level constants, exactly as a
// generated stub would: one Endpoint per IDL method, immutable and
// shared by every Client built from this package.
var (
	getUserEndpoint = wire.NewEndpoint(http.MethodGet,
		urlbuilder.NewTemplateBuilder().Fixed("users").Variable("userId").Build())
	createUserEndpoint = wire.NewEndpoint(http.MethodPost,
		urlbuilder.NewTemplateBuilder().Fixed("users").Build())
	deleteUserEndpoint = wire.NewEndpoint(http.MethodDelete,
		urlbuilder.NewTemplateBuilder().Fixed("users").Variable("userId").Build())
)

// Client is generated-stub output for the UserService IDL definition.
// It holds once-initialized Serializer/Deserializer instances obtained
// from the Runtime's BodySerDe, per spec.md §4.7, and is safe for
// concurrent use by every goroutine calling through it.
type Client struct {
	channel channel.Channel
	runtime *runtime.Runtime

	deserializeUser            func(*wire.Response) (User, error)
	serializeCreateUserRequest func(CreateUserRequest) (*wire.RequestBody, error)
	emptyBodyDeserializer      func(*wire.Response) error
}

// NewClient builds a Client around ch (typically an
// channel.NewTransportChannel wrapped with whatever decorators the
// caller wants — retry, backoff, breaker, tracing) and rt, the
// process-wide Runtime bundle.
func NewClient(ch channel.Channel, rt *runtime.Runtime) *Client {
	bsd := rt.BodySerDe()
	return &Client{
		channel:                    ch,
		runtime:                    rt,
		deserializeUser:            encoding.Deserializer(bsd, encoding.Of[User]()),
		serializeCreateUserRequest: encoding.Serializer(bsd, encoding.Of[CreateUserRequest]()),
		emptyBodyDeserializer:      rt.EmptyBodyDeserializer(),
	}
}

// ResultFuture is a typed Future: the generated stub's async facet
// return type. Get awaits the underlying channel.Future and applies
// the endpoint's deserializer inline on the goroutine that calls Get,
// matching spec.md §9's direct-executor transform.
type ResultFuture[T any] struct {
	inner     *channel.Future
	transform func(*wire.Response) (T, error)
}

// Get blocks until the call resolves or ctx is done.
func (f *ResultFuture[T]) Get(ctx context.Context) (T, error) {
	var zero T
	resp, err := f.inner.Get(ctx)
	if err != nil {
		return zero, err
	}
	return f.transform(resp)
}

// Cancel cancels the in-flight call backing f.
func (f *ResultFuture[T]) Cancel() { f.inner.Cancel() }

// GetUserAsync is the async facet of the IDL's GetUser method: it
// validates userID is present, builds the Request, invokes the
// Channel, and returns immediately with a ResultFuture the caller
// awaits on their own schedule.
func (c *Client) GetUserAsync(ctx context.Context, userID string) (*ResultFuture[User], error) {
	if userID == "" {
		return nil, remoteerror.NewPrecondition("userID")
	}

	req := wire.NewRequest()
	req.PathParams["userId"] = userID

	future := c.channel.Execute(ctx, getUserEndpoint, req)
	return &ResultFuture[User]{inner: future, transform: c.deserializeUser}, nil
}

// GetUser is the blocking facet of GetUser: it awaits the async call
// up to timeout, surfacing a remoteerror.Timeout on expiry without
// cancelling the in-flight call, per spec.md §4.7/§5. Go's error
// chain already satisfies the "execution-wrapper unwrap" rule — there
// is no separate wrapper type to peel off, so the caller observes the
// transport/decode/RemoteError cause directly via errors.As.
func (c *Client) GetUser(ctx context.Context, userID string, timeout time.Duration) (User, error) {
	var zero User
	future, err := c.GetUserAsync(ctx, userID)
	if err != nil {
		return zero, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user, err := future.Get(waitCtx)
	if err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			return zero, remoteerror.WrapTimeout(timeout, waitCtx.Err())
		}
		return zero, err
	}
	return user, nil
}

// CreateUserAsync is the async facet of CreateUser.
func (c *Client) CreateUserAsync(ctx context.Context, in CreateUserRequest) (*ResultFuture[User], error) {
	if in.Name == "" {
		return nil, remoteerror.NewPrecondition("name")
	}
	if in.Email == "" {
		return nil, remoteerror.NewPrecondition("email")
	}

	body, err := c.serializeCreateUserRequest(in)
	if err != nil {
		return nil, err
	}

	req := wire.NewRequest()
	req.Body = body

	future := c.channel.Execute(ctx, createUserEndpoint, req)
	return &ResultFuture[User]{inner: future, transform: c.deserializeUser}, nil
}

// CreateUser is the blocking facet of CreateUser.
func (c *Client) CreateUser(ctx context.Context, in CreateUserRequest, timeout time.Duration) (User, error) {
	var zero User
	future, err := c.CreateUserAsync(ctx, in)
	if err != nil {
		return zero, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user, err := future.Get(waitCtx)
	if err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			return zero, remoteerror.WrapTimeout(timeout, waitCtx.Err())
		}
		return zero, err
	}
	return user, nil
}

// DeleteUserAsync is the async facet of the IDL's unit-returning
// DeleteUser method, decoded with the Runtime's EmptyBodyDeserializer
// instead of a typed BodySerDe deserializer.
func (c *Client) DeleteUserAsync(ctx context.Context, userID string) (*ResultFuture[struct{}], error) {
	if userID == "" {
		return nil, remoteerror.NewPrecondition("userID")
	}

	req := wire.NewRequest()
	req.PathParams["userId"] = userID

	future := c.channel.Execute(ctx, deleteUserEndpoint, req)
	transform := func(resp *wire.Response) (struct{}, error) {
		return struct{}{}, c.emptyBodyDeserializer(resp)
	}
	return &ResultFuture[struct{}]{inner: future, transform: transform}, nil
}

// DeleteUser is the blocking facet of DeleteUser.
func (c *Client) DeleteUser(ctx context.Context, userID string, timeout time.Duration) error {
	future, err := c.DeleteUserAsync(ctx, userID)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err = future.Get(waitCtx)
	if err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			return remoteerror.WrapTimeout(timeout, waitCtx.Err())
		}
		return err
	}
	return nil
}
