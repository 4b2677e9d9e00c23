package drips

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestBatchCompile(t *testing.T) {
	caller := NewCaller(common.HexToAddress("0x00000000000000000000000000000000000000ca"), nil)
	driver := NewAddressDriver(common.HexToAddress("0x00000000000000000000000000000000000000ad"), nil)

	give, err := driver.Give(big.NewInt(1), common.Address{}, big.NewInt(100))
	if err != nil {
		t.Fatalf("Give failed: %v", err)
	}
	collect, err := driver.Collect(common.Address{}, common.Address{})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	batch := caller.NewBatch()
	batch.Add(give).Add(collect)
	if batch.Len() != 2 {
		t.Fatalf("Len = %d, want 2", batch.Len())
	}

	compiled, err := batch.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if compiled.To != caller.Address() {
		t.Errorf("To = %s, want caller address", compiled.To)
	}
	if compiled.Value != nil {
		t.Error("batch with no values must not attach value")
	}

	method := callerABI.Methods["callBatched"]
	if !bytes.Equal(compiled.Data[:4], method.ID) {
		t.Error("calldata selector mismatch")
	}
	args, err := method.Inputs.Unpack(compiled.Data[4:])
	if err != nil {
		t.Fatalf("unpacking calldata failed: %v", err)
	}
	calls := reflect.ValueOf(args[0])
	if calls.Len() != 2 {
		t.Fatalf("batched calls = %d, want 2", calls.Len())
	}
	firstData := calls.Index(0).FieldByName("Data").Interface().([]byte)
	if !bytes.Equal(firstData, give.Data) {
		t.Error("first batched call data mismatch")
	}
	firstTo := calls.Index(0).FieldByName("To").Interface().(common.Address)
	if firstTo != driver.Address() {
		t.Errorf("first batched call target = %s, want driver", firstTo)
	}
}

func TestBatchCompileSumsValues(t *testing.T) {
	caller := NewCaller(common.Address{}, nil)

	batch := caller.NewBatch()
	batch.Add(ContractCall{To: common.Address{}, Data: []byte{1}, Value: big.NewInt(30)})
	batch.Add(ContractCall{To: common.Address{}, Data: []byte{2}})
	batch.Add(ContractCall{To: common.Address{}, Data: []byte{3}, Value: big.NewInt(12)})

	compiled, err := batch.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if compiled.Value == nil || compiled.Value.Int64() != 42 {
		t.Errorf("Value = %v, want 42", compiled.Value)
	}
}

func TestBatchCompileEmpty(t *testing.T) {
	caller := NewCaller(common.Address{}, nil)
	if _, err := caller.NewBatch().Compile(); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("error = %v, want ErrEmptyBatch", err)
	}
}

func TestBatchCallsCopies(t *testing.T) {
	caller := NewCaller(common.Address{}, nil)
	batch := caller.NewBatch()
	batch.Add(ContractCall{Data: []byte{1}})

	calls := batch.Calls()
	calls[0].Data = []byte{9}

	if batch.Calls()[0].Data[0] != 1 {
		t.Error("Calls() must return a copy")
	}
}

func TestCallAs(t *testing.T) {
	caller := NewCaller(common.Address{}, nil)
	sender := common.HexToAddress("0x0000000000000000000000000000000000000001")
	inner := ContractCall{
		To:    common.HexToAddress("0x0000000000000000000000000000000000000002"),
		Data:  []byte{0xde, 0xad},
		Value: big.NewInt(5),
	}

	call, err := caller.CallAs(sender, inner)
	if err != nil {
		t.Fatalf("CallAs failed: %v", err)
	}
	if call.Value == nil || call.Value.Int64() != 5 {
		t.Errorf("Value = %v, want forwarded 5", call.Value)
	}

	method := callerABI.Methods["callAs"]
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		t.Fatalf("unpacking calldata failed: %v", err)
	}
	if args[0].(common.Address) != sender {
		t.Errorf("sender = %s, want %s", args[0], sender)
	}
	if !bytes.Equal(args[2].([]byte), inner.Data) {
		t.Error("inner data mismatch")
	}
}

func TestCallerAuthorization(t *testing.T) {
	backend := &fakeBackend{}
	caller := NewCaller(common.Address{}, backend)
	user := common.HexToAddress("0x0000000000000000000000000000000000000009")

	backend.ret, _ = callerABI.Methods["isAuthorized"].Outputs.Pack(true)
	ok, err := caller.IsAuthorized(context.Background(), common.Address{}, user)
	if err != nil {
		t.Fatalf("IsAuthorized failed: %v", err)
	}
	if !ok {
		t.Error("IsAuthorized = false, want true")
	}

	backend.ret, _ = callerABI.Methods["allAuthorized"].Outputs.Pack([]common.Address{user})
	all, err := caller.AllAuthorized(context.Background(), common.Address{})
	if err != nil {
		t.Fatalf("AllAuthorized failed: %v", err)
	}
	if len(all) != 1 || all[0] != user {
		t.Errorf("AllAuthorized = %v, want [%s]", all, user)
	}

	authorize, err := caller.Authorize(user)
	if err != nil {
		t.Fatalf("Authorize failed: %v", err)
	}
	if !bytes.Equal(authorize.Data[:4], callerABI.Methods["authorize"].ID) {
		t.Error("authorize selector mismatch")
	}

	unauthorize, err := caller.Unauthorize(user)
	if err != nil {
		t.Fatalf("Unauthorize failed: %v", err)
	}
	if !bytes.Equal(unauthorize.Data[:4], callerABI.Methods["unauthorize"].ID) {
		t.Error("unauthorize selector mismatch")
	}
}
