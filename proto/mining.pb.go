// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: mining.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractPatternsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	CorrelationId string                 `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Trace         []*TraceEntry          `protobuf:"bytes,4,rep,name=trace,proto3" json:"trace,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractPatternsRequest) Reset() {
	*x = ExtractPatternsRequest{}
	mi := &file_mining_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractPatternsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractPatternsRequest) ProtoMessage() {}

func (x *ExtractPatternsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mining_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractPatternsRequest.ProtoReflect.Descriptor instead.
func (*ExtractPatternsRequest) Descriptor() ([]byte, []int) {
	return file_mining_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractPatternsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ExtractPatternsRequest) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *ExtractPatternsRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ExtractPatternsRequest) GetTrace() []*TraceEntry {
	if x != nil {
		return x.Trace
	}
	return nil
}

type TraceEntry struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Tool      string                 `protobuf:"bytes,1,opt,name=tool,proto3" json:"tool,omitempty"`
	Action    string                 `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Target    string                 `protobuf:"bytes,3,opt,name=target,proto3" json:"target,omitempty"`
	Succeeded bool                   `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	// RFC-3339 timestamp; empty when the source trace carried none.
	OccurredAt    string `protobuf:"bytes,5,opt,name=occurred_at,json=occurredAt,proto3" json:"occurred_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TraceEntry) Reset() {
	*x = TraceEntry{}
	mi := &file_mining_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TraceEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TraceEntry) ProtoMessage() {}

func (x *TraceEntry) ProtoReflect() protoreflect.Message {
	mi := &file_mining_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TraceEntry.ProtoReflect.Descriptor instead.
func (*TraceEntry) Descriptor() ([]byte, []int) {
	return file_mining_proto_rawDescGZIP(), []int{1}
}

func (x *TraceEntry) GetTool() string {
	if x != nil {
		return x.Tool
	}
	return ""
}

func (x *TraceEntry) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *TraceEntry) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

func (x *TraceEntry) GetSucceeded() bool {
	if x != nil {
		return x.Succeeded
	}
	return false
}

func (x *TraceEntry) GetOccurredAt() string {
	if x != nil {
		return x.OccurredAt
	}
	return ""
}

type ExtractPatternsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patterns      []*MinedPattern        `protobuf:"bytes,1,rep,name=patterns,proto3" json:"patterns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractPatternsResponse) Reset() {
	*x = ExtractPatternsResponse{}
	mi := &file_mining_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractPatternsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractPatternsResponse) ProtoMessage() {}

func (x *ExtractPatternsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mining_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractPatternsResponse.ProtoReflect.Descriptor instead.
func (*ExtractPatternsResponse) Descriptor() ([]byte, []int) {
	return file_mining_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractPatternsResponse) GetPatterns() []*MinedPattern {
	if x != nil {
		return x.Patterns
	}
	return nil
}

type MinedPattern struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Body          string                 `protobuf:"bytes,1,opt,name=body,proto3" json:"body,omitempty"`
	VersionTag    string                 `protobuf:"bytes,2,opt,name=version_tag,json=versionTag,proto3" json:"version_tag,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Intent        string                 `protobuf:"bytes,4,opt,name=intent,proto3" json:"intent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MinedPattern) Reset() {
	*x = MinedPattern{}
	mi := &file_mining_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MinedPattern) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MinedPattern) ProtoMessage() {}

func (x *MinedPattern) ProtoReflect() protoreflect.Message {
	mi := &file_mining_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MinedPattern.ProtoReflect.Descriptor instead.
func (*MinedPattern) Descriptor() ([]byte, []int) {
	return file_mining_proto_rawDescGZIP(), []int{3}
}

func (x *MinedPattern) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

func (x *MinedPattern) GetVersionTag() string {
	if x != nil {
		return x.VersionTag
	}
	return ""
}

func (x *MinedPattern) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *MinedPattern) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

var File_mining_proto protoreflect.FileDescriptor

const file_mining_proto_rawDesc = "" +
	"\n" +
	"\fmining.proto\x12\tmining.v1\"\xad\x01\n" +
	"\x16ExtractPatternsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12%\n" +
	"\x0ecorrelation_id\x18\x02 \x01(\tR\rcorrelationId\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12+\n" +
	"\x05trace\x18\x04 \x03(\v2\x15.mining.v1.TraceEntryR\x05trace\"\x8f\x01\n" +
	"\n" +
	"TraceEntry\x12\x12\n" +
	"\x04tool\x18\x01 \x01(\tR\x04tool\x12\x16\n" +
	"\x06action\x18\x02 \x01(\tR\x06action\x12\x16\n" +
	"\x06target\x18\x03 \x01(\tR\x06target\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\bR\tsucceeded\x12\x1f\n" +
	"\voccurred_at\x18\x05 \x01(\tR\n" +
	"occurredAt\"N\n" +
	"\x17ExtractPatternsResponse\x123\n" +
	"\bpatterns\x18\x01 \x03(\v2\x17.mining.v1.MinedPatternR\bpatterns\"{\n" +
	"\fMinedPattern\x12\x12\n" +
	"\x04body\x18\x01 \x01(\tR\x04body\x12\x1f\n" +
	"\vversion_tag\x18\x02 \x01(\tR\n" +
	"versionTag\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06intent\x18\x04 \x01(\tR\x06intent2i\n" +
	"\rMiningService\x12X\n" +
	"\x0fExtractPatterns\x12!.mining.v1.ExtractPatternsRequest\x1a\".mining.v1.ExtractPatternsResponseB1Z/github.com/onex-platform/omniintelligence/protob\x06proto3"

var (
	file_mining_proto_rawDescOnce sync.Once
	file_mining_proto_rawDescData []byte
)

func file_mining_proto_rawDescGZIP() []byte {
	file_mining_proto_rawDescOnce.Do(func() {
		file_mining_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mining_proto_rawDesc), len(file_mining_proto_rawDesc)))
	})
	return file_mining_proto_rawDescData
}

var file_mining_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_mining_proto_goTypes = []any{
	(*ExtractPatternsRequest)(nil),  // 0: mining.v1.ExtractPatternsRequest
	(*TraceEntry)(nil),              // 1: mining.v1.TraceEntry
	(*ExtractPatternsResponse)(nil), // 2: mining.v1.ExtractPatternsResponse
	(*MinedPattern)(nil),            // 3: mining.v1.MinedPattern
}
var file_mining_proto_depIdxs = []int32{
	1, // 0: mining.v1.ExtractPatternsRequest.trace:type_name -> mining.v1.TraceEntry
	3, // 1: mining.v1.ExtractPatternsResponse.patterns:type_name -> mining.v1.MinedPattern
	0, // 2: mining.v1.MiningService.ExtractPatterns:input_type -> mining.v1.ExtractPatternsRequest
	2, // 3: mining.v1.MiningService.ExtractPatterns:output_type -> mining.v1.ExtractPatternsResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_mining_proto_init() }
func file_mining_proto_init() {
	if File_mining_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mining_proto_rawDesc), len(file_mining_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_mining_proto_goTypes,
		DependencyIndexes: file_mining_proto_depIdxs,
		MessageInfos:      file_mining_proto_msgTypes,
	}.Build()
	File_mining_proto = out.File
	file_mining_proto_goTypes = nil
	file_mining_proto_depIdxs = nil
}
